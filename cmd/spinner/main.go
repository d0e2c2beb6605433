package main

import (
	"fmt"
	"os"
	"spinkit/config"
	"spinkit/logger"
	"spinkit/preview"
	"spinkit/ui"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// render flags
	size      string
	variant   string
	className string
	text      string
	noText    bool

	// presets flags
	presetsFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spinner",
	Short: "Render loading indicator markup and styles",
	Long: `spinner prints the HTML fragment or the stylesheet of the loading
indicator, for embedding in pages that are not built with go-app.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(verbose)
		if err != nil {
			return err
		}
		logger.Init(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the HTML fragment for one spinner configuration",
	Long: `Prints the spinner markup. Unknown sizes or variants still render,
without the matching class.

Example:
  spinner render --size lg --variant dark --text "Saving..."`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the stylesheet backing the spinner classes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), ui.Stylesheet())
		return err
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Render every preset from a presets file",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	renderCmd.Flags().StringVar(&size, "size", string(ui.SizeMD), "Glyph size (sm, md, lg, xl)")
	renderCmd.Flags().StringVar(&variant, "variant", string(ui.VariantPrimary), "Glyph color (primary, secondary, white, dark)")
	renderCmd.Flags().StringVar(&className, "class", "", "Extra classes for the container")
	renderCmd.Flags().StringVar(&text, "text", ui.DefaultText, "Caption text")
	renderCmd.Flags().BoolVar(&noText, "no-text", false, "Omit the caption")

	presetsCmd.Flags().StringVarP(&presetsFile, "file", "f", "", "YAML presets file (defaults to the built-in presets)")

	rootCmd.AddCommand(renderCmd, cssCmd, presetsCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	s := &ui.Spinner{
		Size:      ui.ParseSize(size),
		Variant:   ui.ParseVariant(variant),
		ClassName: className,
		Text:      ui.Caption(text),
	}
	if noText {
		s.Text = ui.NoCaption()
	}
	if _, ok := s.Size.Dimension(); !ok {
		logger.Warn("unknown size %q, rendering without dimension class", size)
	}
	if s.Variant.Class() == "" {
		logger.Warn("unknown variant %q, rendering without color class", variant)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), preview.Fragment(s))
	return err
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets := config.DefaultPresets()
	if presetsFile != "" {
		var err error
		if presets, err = config.LoadPresets(presetsFile); err != nil {
			return err
		}
	}
	logger.Debug("rendering %d presets", len(presets))

	for _, p := range preview.Render(presets) {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", p.Name, p.HTML); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
