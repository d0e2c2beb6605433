package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Section is one gallery area listed in the sidebar.
type Section struct {
	ID    string
	Label string
	Icon  string
}

var gallerySections = []Section{
	{ID: "sizes", Label: "Sizes", Icon: "straighten"},
	{ID: "variants", Label: "Variants", Icon: "palette"},
	{ID: "captions", Label: "Captions", Icon: "short_text"},
	{ID: "presets", Label: "Presets", Icon: "bookmarks"},
	{ID: "playground", Label: "Playground", Icon: "tune"},
}

type Sidebar struct {
	app.Compo
	Title           string
	Sections        []Section
	SelectedSection string
	Uptime          string
	Hostname        string
	Version         string
	Theme           string
	IsOpen          bool
	OnSelect        func(app.Context, string)
	OnToggleTheme   func(app.Context, app.Event)
}

func (s *Sidebar) Render() app.UI {
	themeIcon := "light_mode"
	if s.Theme == "dark" {
		themeIcon = "dark_mode"
	}

	sidebarClass := "sidebar"
	if s.IsOpen {
		sidebarClass += " open"
	}

	uptime := s.Uptime
	if uptime == "" {
		uptime = "..."
	}

	return app.Aside().Class(sidebarClass).Body(
		// Header
		app.Div().Class("sidebar-header").Body(
			app.Div().Class("brand").Body(
				app.Text(s.Title),
			),
			app.Button().Class("btn-icon").Title("Toggle Theme").OnClick(s.OnToggleTheme).Body(
				app.Span().Class("material-symbols-rounded").Text(themeIcon),
			),
		),

		// Section List
		app.Div().Class("repo-list-container").Body(
			app.Div().Class("section-label").Text("Components"),
			app.Ul().Class("repo-list").Body(
				app.Range(s.Sections).Slice(func(i int) app.UI {
					section := s.Sections[i]
					activeClass := ""
					if s.SelectedSection == section.ID {
						activeClass = "active"
					}

					return app.Li().Class("repo-item "+activeClass).
						OnClick(func(ctx app.Context, e app.Event) {
							if s.OnSelect != nil {
								s.OnSelect(ctx, section.ID)
							}
						}).
						Body(
							app.Span().Class("material-symbols-rounded").Text(section.Icon),
							app.Span().Class("path").Text(section.Label),
						)
				}),
			),
		),

		// Footer
		app.Div().Class("sidebar-footer").Body(
			app.Div().Class("sys-stat").Body(
				app.Div().Class("sys-stat-label").Body(
					app.Span().Class("material-symbols-rounded").Text("dns"),
					app.Text("Uptime"),
				),
				app.Div().Style("font-weight", "500").Text(uptime),
			),
			app.If(s.Hostname != "",
				app.Div().Class("sys-stat").Body(
					app.Div().Class("sys-stat-label").Body(
						app.Span().Class("material-symbols-rounded").Text("computer"),
						app.Text("Host"),
					),
					app.Span().Text(s.Hostname),
				),
			),
			app.Div().Class("sys-stat").Body(
				app.Div().Class("sys-stat-label").Body(
					app.Span().Class("material-symbols-rounded").Text("deployed_code"),
					app.Text("Version"),
				),
				app.Span().Text(s.Version),
			),
		),
	)
}
