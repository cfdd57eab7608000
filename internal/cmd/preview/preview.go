// Package preview provides the preview command.
package preview

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gifintext "github.com/riverfjs/gifintext-go"
	"github.com/riverfjs/gifintext-go/internal/cmd/cmdutil"
	"github.com/riverfjs/gifintext-go/internal/view"
)

type previewOptions struct {
	file     string
	html     bool
	markdown bool
}

// NewCmdPreview creates the preview command.
func NewCmdPreview() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Show text with GIF markers replaced by placeholders",
		Long: `Show how text looks once its GIF markers are swapped out.

By default every GIF is printed on its own line as a placeholder with its
URL. With --html an HTML fragment is written instead, with an <img> tag
for each GIF. Images are never downloaded.`,
		Example: `  # Terminal preview
  gifseg preview 'First ![GIF](https://g/1.gif) then ![GIF](https://g/2.gif)'

  # HTML fragment with text segments rendered as Markdown
  gifseg preview -f message.md --html --markdown > message.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.Resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("markdown") {
				settings.Config.Markdown = opts.markdown
			}
			input, err := cmdutil.ReadInput(args, opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runPreview(opts, settings, input, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input from a file (- for stdin)")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Write an HTML fragment")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Render text segments as Markdown (with --html)")

	return cmd
}

func runPreview(opts *previewOptions, settings *cmdutil.Settings, input string, out io.Writer) error {
	segmenter := gifintext.NewSegmenter(settings.Config.SegmenterOptions()...)
	segments := segmenter.Segment(input)
	renderConfig := settings.Config.RenderConfig()

	format := "plain"
	var content string
	if opts.html {
		format = "html"
		var err error
		content, err = gifintext.HTML(segments, renderConfig)
		if err != nil {
			return fmt.Errorf("failed to render html: %w", err)
		}
	} else {
		content = gifintext.Plain(segments, renderConfig)
	}

	renderer := settings.NewRenderer(out)
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(map[string]interface{}{
			"format":  format,
			"content": content,
			"gifs":    len(gifintext.URLs(segments)),
		})
	}

	renderer.RenderRaw(content)
	return nil
}
