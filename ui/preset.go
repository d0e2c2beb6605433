package ui

// Preset is a named spinner configuration, loaded from the presets file
// and listed by the gallery.
type Preset struct {
	Name     string `yaml:"name" json:"name"`
	Size     string `yaml:"size" json:"size,omitempty"`
	Variant  string `yaml:"variant" json:"variant,omitempty"`
	Class    string `yaml:"class" json:"class,omitempty"`
	Text     string `yaml:"text" json:"text,omitempty"`
	HideText bool   `yaml:"hide_text" json:"hide_text,omitempty"`
}

// Spinner builds the component for p. An empty Text keeps the default
// caption unless HideText is set.
func (p Preset) Spinner() *Spinner {
	s := &Spinner{
		Size:      ParseSize(p.Size),
		Variant:   ParseVariant(p.Variant),
		ClassName: p.Class,
	}
	switch {
	case p.HideText:
		s.Text = NoCaption()
	case p.Text != "":
		s.Text = Caption(p.Text)
	}
	return s
}
