package main

import (
	"bytes"
	"os"
	"path/filepath"
	"spinkit/ui"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	// Flag variables survive between Execute calls.
	verbose = false
	size = string(ui.SizeMD)
	variant = string(ui.VariantPrimary)
	className = ""
	text = ui.DefaultText
	noText = false
	presetsFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRenderDefaults(t *testing.T) {
	out := execute(t, "render")

	assert.Contains(t, out, "w-8 h-8")
	assert.Contains(t, out, "border-blue-600")
	assert.Contains(t, out, ui.DefaultText)
}

func TestRenderFlags(t *testing.T) {
	out := execute(t, "render", "--size", "xl", "--variant", "dark", "--class", "page-loader", "--text", "Saving...")

	assert.Contains(t, out, "w-16 h-16")
	assert.Contains(t, out, "border-gray-900")
	assert.Contains(t, out, "page-loader")
	assert.Contains(t, out, "Saving...")
}

func TestRenderNoText(t *testing.T) {
	out := execute(t, "render", "--no-text")

	assert.Contains(t, out, "animate-spin")
	assert.NotContains(t, out, "<p")
}

func TestRenderUnknownSize(t *testing.T) {
	out := execute(t, "render", "--size", "huge")

	assert.Contains(t, out, "animate-spin")
	assert.NotContains(t, out, "w-8")
}

func TestCSS(t *testing.T) {
	out := execute(t, "css")
	assert.Equal(t, ui.Stylesheet(), out)
}

func TestPresetsBuiltin(t *testing.T) {
	out := execute(t, "presets")

	assert.Contains(t, out, "# page")
	assert.Contains(t, out, "# button")
	assert.Contains(t, out, "Loading page...")
}

func TestPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: toast\n    size: sm\n    variant: secondary\n"), 0o600))

	out := execute(t, "presets", "--file", path)

	assert.Contains(t, out, "# toast")
	assert.Contains(t, out, "border-gray-600")
	assert.NotContains(t, out, "# page")
}
