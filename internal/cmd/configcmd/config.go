// Package configcmd provides the config command group.
package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/riverfjs/gifintext-go/internal/cmd/cmdutil"
	"github.com/riverfjs/gifintext-go/internal/config"
	"github.com/riverfjs/gifintext-go/internal/view"
)

// NewCmdConfig creates the config command group.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gifseg configuration",
	}

	cmd.AddCommand(newCmdShow())
	cmd.AddCommand(newCmdInit())

	return cmd
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return path
}

func newCmdShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying the config file,
GIFSEG_* environment variables and command-line flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.Resolve(cmd)
			if err != nil {
				return err
			}
			return runShow(settings, configPath(cmd), cmd.OutOrStdout())
		},
	}
}

func runShow(settings *cmdutil.Settings, path string, out io.Writer) error {
	cfg := settings.Config
	renderer := settings.NewRenderer(out)

	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(map[string]interface{}{
			"path":          path,
			"label":         cfg.Label,
			"output_format": cfg.OutputFormat,
			"gif_symbol":    cfg.RenderConfig().Symbol.GIF,
			"markdown":      cfg.Markdown,
		})
	}

	renderer.RenderKeyValue("path", path)
	renderer.RenderKeyValue("label", cfg.Label)
	renderer.RenderKeyValue("output_format", cfg.OutputFormat)
	renderer.RenderKeyValue("gif_symbol", cfg.RenderConfig().Symbol.GIF)
	renderer.RenderKeyValue("markdown", strconv.FormatBool(cfg.Markdown))
	return nil
}

type initOptions struct {
	force bool
}

func newCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Long: `Write a config file with default values.

The existing file is not read, so --force also replaces a file that no
longer parses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.ResolveOutput(cmd)
			if err != nil {
				return err
			}
			return runInit(opts, settings, configPath(cmd), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(opts *initOptions, settings *cmdutil.Settings, path string, out io.Writer) error {
	renderer := settings.NewRenderer(out)

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	renderer.Success("Configuration saved to " + path)
	return nil
}
