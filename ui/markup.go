package ui

import (
	"sort"
	"strings"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup returns the HTML for s with every element's attributes sorted by
// name, so identical spinners always serialize to identical bytes.
func Markup(s *Spinner) string {
	raw := app.HTMLString(s.Render())

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return raw
	}

	var b strings.Builder
	for _, n := range nodes {
		sortAttrs(n)
		if err := html.Render(&b, n); err != nil {
			return raw
		}
	}
	return b.String()
}

func sortAttrs(n *html.Node) {
	if n.Type == html.ElementNode {
		sort.SliceStable(n.Attr, func(i, j int) bool {
			return n.Attr[i].Key < n.Attr[j].Key
		})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sortAttrs(c)
	}
}
