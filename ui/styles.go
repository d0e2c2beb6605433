package ui

import (
	"fmt"
	"strings"
)

// StylesheetPath is where the backend serves Stylesheet.
const StylesheetPath = "/web/spinner.css"

var layoutRules = []string{
	".flex{display:flex}",
	".flex-col{flex-direction:column}",
	".items-center{align-items:center}",
	".justify-center{justify-content:center}",
	".rounded-full{border-radius:9999px}",
	".border-2{border-width:2px;border-style:solid}",
	"@keyframes spin{from{transform:rotate(0deg)}to{transform:rotate(360deg)}}",
	".animate-spin{animation:spin 1s linear infinite}",
}

var captionRules = []string{
	".mt-2{margin-top:0.5rem}",
	".text-sm{font-size:0.875rem;line-height:1.25rem}",
	".text-gray-600{color:#4b5563}",
}

// Stylesheet returns the CSS for every class a Spinner can emit.
func Stylesheet() string {
	var b strings.Builder

	for _, r := range layoutRules {
		b.WriteString(r)
		b.WriteByte('\n')
	}

	for _, s := range sizeOrder {
		spec := sizeTable[s]
		for _, c := range strings.Fields(spec.class) {
			prop := "width"
			if strings.HasPrefix(c, "h-") {
				prop = "height"
			}
			fmt.Fprintf(&b, ".%s{%s:%dpx}\n", c, prop, spec.px)
		}
	}

	for _, v := range variantOrder {
		spec := variantTable[v]
		fmt.Fprintf(&b, ".%s{border-color:%s}\n", spec.class, spec.color)
	}

	// Must follow the variant rules so the leading edge stays open.
	b.WriteString(".border-t-transparent{border-top-color:transparent}\n")

	for _, r := range captionRules {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}
