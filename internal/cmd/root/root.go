// Package root provides the root command for the gifseg CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/gifintext-go/internal/cmd/configcmd"
	"github.com/riverfjs/gifintext-go/internal/cmd/preview"
	"github.com/riverfjs/gifintext-go/internal/cmd/segment"
	"github.com/riverfjs/gifintext-go/internal/cmd/urls"
	"github.com/riverfjs/gifintext-go/internal/version"
)

// NewCmdRoot creates the root command for gifseg.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gifseg",
		Short: "Split text with inline ![GIF](url) markers",
		Long: `gifseg finds ![GIF](url) markers in text and splits the text into
plain-text and GIF segments, keeping everything between the markers.

Use 'segment' to inspect the segments, 'preview' to see the text with
placeholders (or as HTML), and 'urls' to list the GIF URLs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/gifseg/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("label", "", "marker label to match, e.g. STICKER for ![STICKER](url) (default: GIF)")

	cmd.SetVersionTemplate("gifseg version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(segment.NewCmdSegment())
	cmd.AddCommand(preview.NewCmdPreview())
	cmd.AddCommand(urls.NewCmdURLs())
	cmd.AddCommand(configcmd.NewCmdConfig())

	return cmd
}
