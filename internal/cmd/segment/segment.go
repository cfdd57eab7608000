// Package segment provides the segment command.
package segment

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	gifintext "github.com/riverfjs/gifintext-go"
	"github.com/riverfjs/gifintext-go/internal/cmd/cmdutil"
	"github.com/riverfjs/gifintext-go/internal/view"
)

type segmentOptions struct {
	file     string
	maxWidth int
}

// segmentJSON is the JSON form of one segment. URL is a pointer so that an
// empty URL from ![GIF]() is still printed.
type segmentJSON struct {
	Type string  `json:"type"`
	Raw  string  `json:"raw"`
	URL  *string `json:"url,omitempty"`
	gifintext.Span
}

// NewCmdSegment creates the segment command.
func NewCmdSegment() *cobra.Command {
	opts := &segmentOptions{}

	cmd := &cobra.Command{
		Use:     "segment [text...]",
		Aliases: []string{"seg", "raw"},
		Short:   "Split text into text and GIF segments",
		Long: `Split text into an ordered list of plain-text and GIF segments.

Every ![GIF](url) marker becomes a gif segment; everything else is kept
verbatim as text. The segments always add back up to the input.`,
		Example: `  # Segment text given as arguments
  gifseg segment 'Look ![GIF](https://media.example.com/cat.gif) at this'

  # Segment a file and print JSON with byte and UTF-16 offsets
  gifseg segment -f message.txt -o json

  # Match ![STICKER](url) instead
  echo 'hi ![STICKER](s.gif)' | gifseg segment --label STICKER`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdutil.Resolve(cmd)
			if err != nil {
				return err
			}
			input, err := cmdutil.ReadInput(args, opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runSegment(opts, settings, input, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input from a file (- for stdin)")
	cmd.Flags().IntVarP(&opts.maxWidth, "width", "w", 60, "Maximum width of the VALUE column in table output")

	return cmd
}

func runSegment(opts *segmentOptions, settings *cmdutil.Settings, input string, out io.Writer) error {
	segmenter := gifintext.NewSegmenter(settings.Config.SegmenterOptions()...)
	segments := segmenter.Segment(input)

	renderer := settings.NewRenderer(out)

	if renderer.Format() == view.FormatJSON {
		items := make([]segmentJSON, 0, len(segments))
		for _, seg := range segments {
			item := segmentJSON{
				Type: seg.GetSegmentType().String(),
				Raw:  seg.Raw(),
				Span: seg.GetSpan(),
			}
			if r, ok := seg.(*gifintext.Resource); ok {
				url := r.URL
				item.URL = &url
			}
			items = append(items, item)
		}
		return renderer.RenderJSON(items)
	}

	if len(segments) == 0 {
		if renderer.Format() == view.FormatTable {
			renderer.RenderText("No segments (empty input).")
		}
		return nil
	}

	headers := []string{"#", "TYPE", "START", "END", "VALUE"}
	rows := make([][]string, 0, len(segments))
	for i, seg := range segments {
		span := seg.GetSpan()
		typ := seg.GetSegmentType().String()
		var value string
		switch s := seg.(type) {
		case *gifintext.Resource:
			value = s.URL
			typ = renderer.Highlight(typ)
		default:
			value = strconv.Quote(seg.Raw())
		}
		if renderer.Format() == view.FormatTable && opts.maxWidth > 0 {
			value = view.Truncate(value, opts.maxWidth)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			typ,
			strconv.Itoa(span.Start),
			strconv.Itoa(span.End),
			value,
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
