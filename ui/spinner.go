package ui

import (
	"strings"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Size selects the glyph dimension tier. The zero value means md.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Variant selects the glyph color tier. The zero value means primary.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantWhite     Variant = "white"
	VariantDark      Variant = "dark"
)

const (
	DefaultText = "Loading..."

	containerClass = "flex flex-col items-center justify-center"
	glyphClass     = "animate-spin rounded-full border-2 border-t-transparent"
	captionClass   = "mt-2 text-sm text-gray-600"
	glyphLabel     = "Loading"
)

type sizeSpec struct {
	class string
	px    int
}

type variantSpec struct {
	class string
	color string
}

var sizeOrder = []Size{SizeSM, SizeMD, SizeLG, SizeXL}

var sizeTable = map[Size]sizeSpec{
	SizeSM: {class: "w-4 h-4", px: 16},
	SizeMD: {class: "w-8 h-8", px: 32},
	SizeLG: {class: "w-12 h-12", px: 48},
	SizeXL: {class: "w-16 h-16", px: 64},
}

var variantOrder = []Variant{VariantPrimary, VariantSecondary, VariantWhite, VariantDark}

var variantTable = map[Variant]variantSpec{
	VariantPrimary:   {class: "border-blue-600", color: "#2563eb"},
	VariantSecondary: {class: "border-gray-600", color: "#4b5563"},
	VariantWhite:     {class: "border-white", color: "#ffffff"},
	VariantDark:      {class: "border-gray-900", color: "#111827"},
}

// Sizes returns every size tier, smallest first.
func Sizes() []Size {
	return append([]Size(nil), sizeOrder...)
}

// Variants returns every color tier in display order.
func Variants() []Variant {
	return append([]Variant(nil), variantOrder...)
}

// ParseSize converts s to a Size verbatim. Tokens are case sensitive, so
// "LG" is unknown and resolves to no class when rendered.
func ParseSize(s string) Size {
	return Size(s)
}

// ParseVariant converts s to a Variant verbatim. Unknown tokens are kept
// as-is.
func ParseVariant(s string) Variant {
	return Variant(s)
}

func (s Size) resolve() Size {
	if s == "" {
		return SizeMD
	}
	return s
}

// Class returns the dimension classes for s, or "" when s is unknown.
func (s Size) Class() string {
	return sizeTable[s.resolve()].class
}

// Dimension returns the square glyph edge in pixels.
func (s Size) Dimension() (int, bool) {
	spec, ok := sizeTable[s.resolve()]
	return spec.px, ok
}

func (v Variant) resolve() Variant {
	if v == "" {
		return VariantPrimary
	}
	return v
}

// Class returns the border color class for v, or "" when v is unknown.
func (v Variant) Class() string {
	return variantTable[v.resolve()].class
}

// Color returns the CSS color backing v's class.
func (v Variant) Color() string {
	return variantTable[v.resolve()].color
}

// Caption returns a caption value for Spinner.Text.
func Caption(s string) *string {
	return &s
}

// NoCaption returns a Spinner.Text value that hides the caption line.
func NoCaption() *string {
	return Caption("")
}

// Spinner renders a rotating circle with an optional caption below it.
// Deciding when to show it is up to the caller.
type Spinner struct {
	app.Compo
	Size      Size
	Variant   Variant
	ClassName string
	Text      *string // nil shows DefaultText
}

// CaptionText returns the caption line s renders, "" when hidden.
func (s *Spinner) CaptionText() string {
	if s.Text == nil {
		return DefaultText
	}
	return *s.Text
}

func (s *Spinner) Render() app.UI {
	text := s.CaptionText()

	return app.Div().Class(joinClasses(containerClass, s.ClassName)).Body(
		app.Div().
			Class(joinClasses(glyphClass, s.Size.Class(), s.Variant.Class())).
			Attr("role", "status").
			Aria("label", glyphLabel),
		app.If(text != "",
			app.P().Class(captionClass).Text(text),
		),
	)
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
