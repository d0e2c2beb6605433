package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// SwatchCard shows one spinner configuration on a gallery tile.
type SwatchCard struct {
	app.Compo
	Title    string
	Subtitle string
	Icon     string
	Size     Size
	Variant   Variant
	ClassName string
	Text      *string
}

func (c *SwatchCard) spinner() *Spinner {
	return &Spinner{
		Size:      c.Size,
		Variant:   c.Variant,
		ClassName: c.ClassName,
		Text:      c.Text,
	}
}

func (c *SwatchCard) Render() app.UI {
	previewClass := "swatch-preview"
	if c.Variant == VariantWhite {
		// White glyphs vanish on the light surface.
		previewClass += " dark"
	}

	return app.Div().Class("stat-card").Body(
		app.Div().Class("stat-card-icon").Body(
			app.Span().Class("material-symbols-rounded").Text(c.Icon),
		),
		app.Div().Class("stat-label").Text(c.Title),
		app.Div().Class(previewClass).Body(c.spinner()),
		app.If(c.Subtitle != "",
			app.Div().Class("stat-sub").Text(c.Subtitle),
		),
	)
}
