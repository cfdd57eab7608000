// Package urls provides the urls command.
package urls

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	gifintext "github.com/riverfjs/gifintext-go"
	"github.com/riverfjs/gifintext-go/internal/cmd/cmdutil"
	"github.com/riverfjs/gifintext-go/internal/view"
)

type urlsOptions struct {
	file string
}

// NewCmdURLs creates the urls command.
func NewCmdURLs() *cobra.Command {
	opts := &urlsOptions{}

	cmd := &cobra.Command{
		Use:   "urls [text...]",
		Short: "List the URL of every GIF marker",
		Example: `  # One URL per line
  gifseg urls -f message.txt -o plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.Resolve(cmd)
			if err != nil {
				return err
			}
			input, err := cmdutil.ReadInput(args, opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runURLs(settings, input, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input from a file (- for stdin)")

	return cmd
}

func runURLs(settings *cmdutil.Settings, input string, out io.Writer) error {
	segmenter := gifintext.NewSegmenter(settings.Config.SegmenterOptions()...)
	found := gifintext.URLs(segmenter.Segment(input))

	renderer := settings.NewRenderer(out)

	switch renderer.Format() {
	case view.FormatJSON:
		if found == nil {
			found = []string{}
		}
		return renderer.RenderJSON(found)
	case view.FormatPlain:
		for _, u := range found {
			renderer.RenderText(u)
		}
		return nil
	}

	if len(found) == 0 {
		renderer.RenderText("No GIF markers found.")
		return nil
	}

	rows := make([][]string, 0, len(found))
	for i, u := range found {
		rows = append(rows, []string{strconv.Itoa(i + 1), u})
	}
	renderer.RenderTable([]string{"#", "URL"}, rows)
	return nil
}
