package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkupIsByteStable(t *testing.T) {
	s := &Spinner{Size: SizeLG, Variant: VariantDark, ClassName: "mx-auto", Text: Caption("Syncing")}

	want := Markup(s)
	for i := 0; i < 200; i++ {
		assert.Equal(t, want, Markup(s), "render %d", i)
	}

	same := &Spinner{Size: SizeLG, Variant: VariantDark, ClassName: "mx-auto", Text: Caption("Syncing")}
	assert.Equal(t, want, Markup(same))
}

func TestMarkupSortsAttributes(t *testing.T) {
	out := Markup(&Spinner{Size: SizeLG, Variant: VariantDark})

	assert.Contains(t, out, `<div aria-label="Loading" class="animate-spin rounded-full border-2 border-t-transparent w-12 h-12 border-gray-900" role="status">`)
	assert.Contains(t, out, `<div class="flex flex-col items-center justify-center">`)
	assert.Contains(t, out, `<p class="mt-2 text-sm text-gray-600">`)
}

func TestMarkupEscapesAmpersand(t *testing.T) {
	out := Markup(&Spinner{Text: Caption("Saving & syncing")})

	assert.Contains(t, out, "Saving &amp; syncing")
}

func TestMarkupWithoutCaption(t *testing.T) {
	out := Markup(&Spinner{Text: NoCaption()})

	assert.Contains(t, out, "animate-spin")
	assert.False(t, strings.Contains(out, "<p"))
}
