package preview

import (
	"encoding/json"
	"net/http"
	"net/url"
	"spinkit/logger"
	"spinkit/ui"
)

// OptionsFromQuery maps query parameters onto a Spinner. A missing "text"
// key keeps the default caption; "text=" hides it.
func OptionsFromQuery(q url.Values) *ui.Spinner {
	s := &ui.Spinner{
		Size:      ui.ParseSize(q.Get("size")),
		Variant:   ui.ParseVariant(q.Get("variant")),
		ClassName: q.Get("class"),
	}
	if _, ok := q["text"]; ok {
		s.Text = ui.Caption(q.Get("text"))
	}
	return s
}

// Fragment returns the HTML markup for s. Attributes are emitted in name
// order, so the bytes are stable across calls.
func Fragment(s *ui.Spinner) string {
	return ui.Markup(s)
}

// Handler serves GET /api/spinner. Unknown sizes or variants still render.
func Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s := OptionsFromQuery(r.URL.Query())
	if _, ok := s.Size.Dimension(); !ok {
		logger.Debug("preview: unknown size %q, rendering without dimension", s.Size)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(Fragment(s)))
}

// StylesheetHandler serves the CSS backing the spinner classes.
func StylesheetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(ui.Stylesheet()))
}

type PresetFragment struct {
	ui.Preset
	HTML string `json:"html"`
}

// Render pairs each preset with its markup.
func Render(presets []ui.Preset) []PresetFragment {
	out := make([]PresetFragment, 0, len(presets))
	for _, p := range presets {
		out = append(out, PresetFragment{Preset: p, HTML: Fragment(p.Spinner())})
	}
	return out
}

// PresetsHandler serves GET /api/presets as JSON.
func PresetsHandler(presets []ui.Preset) http.HandlerFunc {
	rendered := Render(presets)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rendered); err != nil {
			logger.Error("preview: failed to encode presets: %v", err)
		}
	}
}
