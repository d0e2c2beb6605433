package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"spinkit/checker"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Gallery shows every spinner tier plus a playground for trying
// configurations and copying their markup.
type Gallery struct {
	app.Compo
	Title           string
	Status          checker.SystemStatus
	Presets         []Preset
	PresetsError    string
	SelectedSection string
	Theme           string
	SidebarOpen     bool

	// Playground
	PlaySize     string
	PlayVariant  string
	PlayClass    string
	PlayText     string
	PlayHideText bool
}

func (g *Gallery) OnMount(ctx app.Context) {
	if g.Title == "" {
		g.Title = app.Getenv("SPINNER_NAME")
	}
	if g.Title == "" {
		g.Title = "Spinner Gallery"
	}
	if g.PlaySize == "" {
		g.PlaySize = string(SizeMD)
	}
	if g.PlayVariant == "" {
		g.PlayVariant = string(VariantPrimary)
	}
	if g.PlayText == "" {
		g.PlayText = DefaultText
	}

	var theme string
	ctx.LocalStorage().Get("theme", &theme)
	if theme == "dark" {
		g.Theme = "dark"
		app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
	} else {
		g.Theme = "light"
	}

	g.loadSystemStatus(ctx)
	g.loadPresets(ctx)
}

func (g *Gallery) loadSystemStatus(ctx app.Context) {
	go func() {
		resp, err := http.Get("/api/status")
		if err != nil {
			return // the footer keeps showing placeholders
		}
		defer resp.Body.Close()

		var status checker.SystemStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			g.Status = status
			g.Update()
		})
	}()
}

func (g *Gallery) loadPresets(ctx app.Context) {
	go func() {
		resp, err := http.Get("/api/presets")
		if err != nil {
			ctx.Dispatch(func(ctx app.Context) {
				g.PresetsError = "Failed to fetch presets: " + err.Error()
				g.Update()
			})
			return
		}
		defer resp.Body.Close()

		var presets []Preset
		if err := json.NewDecoder(resp.Body).Decode(&presets); err != nil {
			ctx.Dispatch(func(ctx app.Context) {
				g.PresetsError = "Failed to decode presets: " + err.Error()
				g.Update()
			})
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			g.Presets = presets
			g.PresetsError = ""
			g.Update()
		})
	}()
}

func (g *Gallery) selectSection(ctx app.Context, id string) {
	g.SelectedSection = id
	g.SidebarOpen = false
	if el := app.Window().GetElementByID(id); el.Truthy() {
		el.Call("scrollIntoView")
	}
	g.Update()
}

func (g *Gallery) toggleTheme(ctx app.Context, e app.Event) {
	if g.Theme == "dark" {
		g.Theme = "light"
		app.Window().Get("document").Get("body").Get("classList").Call("remove", "dark-theme")
		ctx.LocalStorage().Set("theme", "light")
	} else {
		g.Theme = "dark"
		app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
		ctx.LocalStorage().Set("theme", "dark")
	}
	g.Update()
}

func (g *Gallery) toggleSidebar(ctx app.Context, e app.Event) {
	g.SidebarOpen = !g.SidebarOpen
	g.Update()
}

func (g *Gallery) closeSidebar(ctx app.Context, e app.Event) {
	if g.SidebarOpen {
		g.SidebarOpen = false
		g.Update()
	}
}

func (g *Gallery) onHideText(ctx app.Context, e app.Event) {
	g.PlayHideText = ctx.JSSrc().Get("checked").Bool()
	g.Update()
}

// playgroundSpinner is the spinner described by the playground inputs.
func (g *Gallery) playgroundSpinner() *Spinner {
	s := &Spinner{
		Size:      ParseSize(g.PlaySize),
		Variant:   ParseVariant(g.PlayVariant),
		ClassName: g.PlayClass,
		Text:      Caption(g.PlayText),
	}
	if g.PlayHideText {
		s.Text = NoCaption()
	}
	return s
}

func (g *Gallery) renderSizes() app.UI {
	sizes := Sizes()
	return g.renderSection("sizes", "Sizes", "Four fixed square tiers.",
		app.Range(sizes).Slice(func(i int) app.UI {
			px, _ := sizes[i].Dimension()
			return &SwatchCard{
				Title:    string(sizes[i]),
				Subtitle: fmt.Sprintf("%dpx · %s", px, sizes[i].Class()),
				Icon:     "straighten",
				Size:     sizes[i],
				Text:     NoCaption(),
			}
		}),
	)
}

func (g *Gallery) renderVariants() app.UI {
	variants := Variants()
	return g.renderSection("variants", "Variants", "Color tiers applied to the glyph border.",
		app.Range(variants).Slice(func(i int) app.UI {
			return &SwatchCard{
				Title:    string(variants[i]),
				Subtitle: variants[i].Class() + " · " + variants[i].Color(),
				Icon:     "palette",
				Variant:  variants[i],
				Text:     NoCaption(),
			}
		}),
	)
}

func (g *Gallery) renderCaptions() app.UI {
	return g.renderSection("captions", "Captions", "The caption line is optional; the glyph is always shown.",
		&SwatchCard{Title: "Default", Subtitle: "Text not set", Icon: "short_text"},
		&SwatchCard{Title: "Custom", Subtitle: `Text: "Fetching results"`, Icon: "edit_note", Text: Caption("Fetching results")},
		&SwatchCard{Title: "Hidden", Subtitle: "Text: empty", Icon: "visibility_off", Text: NoCaption()},
	)
}

func (g *Gallery) renderPresets() app.UI {
	if g.PresetsError != "" {
		return g.renderSection("presets", "Presets", "Configured in the presets file.",
			app.Div().Class("auth-error").Text(g.PresetsError),
		)
	}
	return g.renderSection("presets", "Presets", "Configured in the presets file.",
		app.Range(g.Presets).Slice(func(i int) app.UI {
			return presetCard(g.Presets[i])
		}),
	)
}

func presetCard(p Preset) *SwatchCard {
	s := p.Spinner()
	return &SwatchCard{
		Title:     p.Name,
		Subtitle:  string(s.Size.resolve()) + " · " + string(s.Variant.resolve()),
		Icon:      "bookmark",
		Size:      s.Size,
		Variant:   s.Variant,
		ClassName: s.ClassName,
		Text:      s.Text,
	}
}

func (g *Gallery) renderPlayground() app.UI {
	s := g.playgroundSpinner()

	return app.Section().ID("playground").Class("repo-panel").Style("margin-top", "24px").Body(
		app.H2().Class("section-title").Text("Playground"),
		app.Div().Class("playground").Body(
			app.Div().Class("playground-controls").Body(
				app.Div().Class("md3-field").Body(
					app.Label().Text("Size"),
					app.Select().OnChange(g.ValueTo(&g.PlaySize)).Body(
						app.Range(Sizes()).Slice(func(i int) app.UI {
							v := string(Sizes()[i])
							return app.Option().Value(v).Selected(v == g.PlaySize).Text(v)
						}),
					),
				),
				app.Div().Class("md3-field").Body(
					app.Label().Text("Variant"),
					app.Select().OnChange(g.ValueTo(&g.PlayVariant)).Body(
						app.Range(Variants()).Slice(func(i int) app.UI {
							v := string(Variants()[i])
							return app.Option().Value(v).Selected(v == g.PlayVariant).Text(v)
						}),
					),
				),
				app.Div().Class("md3-field").Body(
					app.Label().Text("Extra classes"),
					app.Input().Type("text").Value(g.PlayClass).OnInput(g.ValueTo(&g.PlayClass)),
				),
				app.Div().Class("md3-field").Body(
					app.Label().Text("Caption"),
					app.Input().Type("text").Value(g.PlayText).Disabled(g.PlayHideText).OnInput(g.ValueTo(&g.PlayText)),
				),
				app.Label().Class("checkbox-field").Body(
					app.Input().Type("checkbox").Checked(g.PlayHideText).OnChange(g.onHideText),
					app.Text("Hide caption"),
				),
			),
			app.Div().Class("swatch-preview").Body(s),
		),
		app.Pre().Class("fragment-markup").Text(Markup(s)),
	)
}

func (g *Gallery) renderSection(id, title, subtitle string, cards ...app.UI) app.UI {
	return app.Section().ID(id).Class("repo-panel").Style("margin-top", "24px").Body(
		app.H2().Class("section-title").Text(title),
		app.Span().Class("page-subtitle").Text(subtitle),
		app.Div().Class("stats-grid").Body(cards...),
	)
}

func (g *Gallery) Render() app.UI {
	return app.Div().Class("app-layout").Body(
		&Sidebar{
			Title:           g.Title,
			Sections:        gallerySections,
			SelectedSection: g.SelectedSection,
			Uptime:          g.Status.UptimeString,
			Hostname:        g.Status.Hostname,
			Version:         g.Status.Version,
			Theme:           g.Theme,
			IsOpen:          g.SidebarOpen,
			OnSelect:        g.selectSection,
			OnToggleTheme:   g.toggleTheme,
		},
		// Mobile Sidebar Overlay
		app.If(g.SidebarOpen,
			app.Div().Class("sidebar-overlay").OnClick(g.closeSidebar),
		),
		app.Main().Class("main-content").Body(
			app.Header().Class("top-bar").Body(
				app.Div().Style("display", "flex").Style("align-items", "center").Style("gap", "12px").Body(
					app.Button().
						Class("btn-icon mobile-menu-btn").
						OnClick(g.toggleSidebar).
						Body(
							app.Span().Class("material-symbols-rounded").Text("menu"),
						),
					app.Div().Body(
						app.H1().Class("page-title").Text(g.Title),
						app.Span().Class("page-subtitle").Text("Loading indicator sizes, variants and captions"),
					),
				),
			),
			g.renderSizes(),
			g.renderVariants(),
			g.renderCaptions(),
			g.renderPresets(),
			g.renderPlayground(),
		),
	)
}
