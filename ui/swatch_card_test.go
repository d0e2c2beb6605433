package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetCardKeepsClassName(t *testing.T) {
	card := presetCard(Preset{Name: "inline", Size: "sm", Variant: "secondary", Class: "inline-spinner", HideText: true})

	assert.Equal(t, "inline", card.Title)
	assert.Equal(t, "inline-spinner", card.ClassName)

	f := renderFragment(t, card.spinner())
	assert.Equal(t, "flex flex-col items-center justify-center inline-spinner", attr(f.container, "class"))
	assert.Contains(t, attr(f.glyph, "class"), "w-4 h-4 border-gray-600")
	assert.Nil(t, f.caption)
}

func TestPresetCardMatchesPresetMarkup(t *testing.T) {
	for _, p := range []Preset{
		{Name: "page", Size: "xl", Variant: "primary", Text: "Loading page..."},
		{Name: "table", Size: "md", Variant: "secondary", Class: "table-loader", Text: "Fetching rows..."},
		{Name: "odd", Size: "huge", Class: "wide"},
	} {
		t.Run(p.Name, func(t *testing.T) {
			card := presetCard(p)
			require.NotNil(t, card)
			assert.Equal(t, Markup(p.Spinner()), Markup(card.spinner()))
		})
	}
}

func TestSwatchCardSpinner(t *testing.T) {
	card := &SwatchCard{Size: SizeXL, Variant: VariantWhite, ClassName: "hero", Text: Caption("Uploading")}

	s := card.spinner()
	assert.Equal(t, SizeXL, s.Size)
	assert.Equal(t, VariantWhite, s.Variant)
	assert.Equal(t, "hero", s.ClassName)
	assert.Equal(t, "Uploading", s.CaptionText())
}
