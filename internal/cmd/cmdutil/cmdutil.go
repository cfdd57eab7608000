// Package cmdutil holds helpers shared by gifseg subcommands.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riverfjs/gifintext-go/internal/config"
	"github.com/riverfjs/gifintext-go/internal/view"
)

// ErrNoInput is returned when no text was given by argument or file and
// stdin is an interactive terminal.
var ErrNoInput = errors.New("no input: pass text as arguments, --file, or pipe it on stdin")

// Settings is the resolved configuration for one command run:
// defaults, then config file, then GIFSEG_* environment, then flags.
type Settings struct {
	Config  *config.Config
	NoColor bool
}

// Resolve loads the config file named by --config (or the default path) and
// applies the global flags the user set explicitly.
func Resolve(cmd *cobra.Command) (*Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputFormat, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("label") {
		cfg.Label, _ = cmd.Flags().GetString("label")
	}

	defaults := config.Default()
	if cfg.Label == "" {
		cfg.Label = defaults.Label
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = defaults.OutputFormat
	}

	if err := view.ValidateFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	return &Settings{Config: cfg, NoColor: noColor}, nil
}

// ResolveOutput applies only the --output and --no-color flags on top of
// the defaults. Commands that rewrite the config file use it so a broken
// file or GIFSEG_* value cannot block them.
func ResolveOutput(cmd *cobra.Command) (*Settings, error) {
	cfg := config.Default()
	if cmd.Flags().Changed("output") {
		cfg.OutputFormat, _ = cmd.Flags().GetString("output")
	}
	if err := view.ValidateFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	return &Settings{Config: cfg, NoColor: noColor}, nil
}

// NewRenderer returns a renderer for the resolved output format writing to w.
func (s *Settings) NewRenderer(w io.Writer) *view.Renderer {
	r := view.NewRenderer(view.Format(s.Config.OutputFormat), s.NoColor)
	r.SetWriter(w)
	return r
}

// ReadInput returns the text to process.
//
// A file path takes precedence ("-" means stdin); otherwise arguments are
// joined with single spaces; otherwise stdin is read in full unless it is
// a terminal, which yields ErrNoInput instead of waiting for typed input.
func ReadInput(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" && len(args) > 0 {
		return "", errors.New("pass text either as arguments or with --file, not both")
	}

	if file != "" {
		if file == "-" {
			return readAll(stdin)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	return readAll(stdin)
}

// isTerminal reports whether r is a terminal device.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readAll(r io.Reader) (string, error) {
	if r == nil || isTerminal(r) {
		return "", ErrNoInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
