package config

import (
	"errors"
	"fmt"
	"os"
	"spinkit/ui"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string
	Name        string
	Version     string
	Debug       bool
	PresetsFile string
	Presets     []ui.Preset
}

type presetsFile struct {
	Presets []ui.Preset `yaml:"presets"`
}

// Load reads envPath (if it exists) into the environment, then builds the
// config from SPINNER_* variables. A missing env file is not an error.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		if err := loadDotEnv(envPath); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	cfg := Config{
		Addr:        getenv("SPINNER_ADDR", ":8000"),
		Name:        getenv("SPINNER_NAME", "Spinner Gallery"),
		Version:     getenv("SPINNER_VERSION", "v1"),
		PresetsFile: os.Getenv("SPINNER_PRESETS"),
	}

	if v := os.Getenv("SPINNER_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SPINNER_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if cfg.PresetsFile != "" {
		presets, err := LoadPresets(cfg.PresetsFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Presets = presets
	} else {
		cfg.Presets = DefaultPresets()
	}
	return cfg, nil
}

// LoadPresets parses a YAML presets file.
func LoadPresets(path string) ([]ui.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}

	var f presetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}

	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d in %s has no name", i, path)
		}
	}
	return f.Presets, nil
}

// DefaultPresets is used when no presets file is configured.
func DefaultPresets() []ui.Preset {
	return []ui.Preset{
		{Name: "page", Size: "xl", Variant: "primary", Text: "Loading page..."},
		{Name: "button", Size: "sm", Variant: "white", HideText: true},
		{Name: "inline", Size: "sm", Variant: "secondary", Class: "inline-spinner", HideText: true},
		{Name: "panel", Size: "lg", Variant: "dark"},
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
