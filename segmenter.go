package gifintext

import (
	"regexp"

	"github.com/riverfjs/gifintext-go/internal/buffer"
)

// DefaultLabel is the marker label matched by the default segmenter.
const DefaultLabel = "GIF"

// Segmenter splits text into Text and Resource segments.
//
// A Segmenter only holds a compiled pattern and is safe for concurrent use.
type Segmenter struct {
	label  string
	prefix string
	re     *regexp.Regexp
}

// NewSegmenter builds a segmenter for markers of the form ![<label>](url).
//
// The url is everything between the opening "(" and the first ")" after it,
// on the same line.
func NewSegmenter(opts ...Option) *Segmenter {
	options := applyOptions(opts...)
	return &Segmenter{
		label:  options.Label,
		prefix: "![" + options.Label + "](",
		re:     regexp.MustCompile(`!\[` + regexp.QuoteMeta(options.Label) + `\]\((.*?)\)`),
	}
}

// Label returns the marker label.
func (s *Segmenter) Label() string {
	return s.label
}

// Prefix returns the fixed text that starts every marker, e.g. "![GIF](".
func (s *Segmenter) Prefix() string {
	return s.prefix
}

// Segment splits input into an ordered list of segments that covers it
// with no gaps or overlaps. Empty input returns nil.
func (s *Segmenter) Segment(input string) []Segment {
	if input == "" {
		return nil
	}

	matches := s.re.FindAllStringSubmatchIndex(input, -1)
	result := make([]Segment, 0, 2*len(matches)+1)
	tb := buffer.New()
	cursor := 0

	for _, m := range matches {
		start, end := m[0], m[1]

		// Emit text before this marker; adjacent markers produce no empty text
		if start > cursor {
			content := input[cursor:start]
			result = append(result, &Text{
				Content: content,
				Span:    advance(tb, content),
			})
		}

		rawMatch := input[start:end]
		result = append(result, &Resource{
			RawMatch: rawMatch,
			URL:      input[m[2]:m[3]],
			Span:     advance(tb, rawMatch),
		})

		cursor = end
	}

	// Emit remaining text after the last marker
	if cursor < len(input) {
		content := input[cursor:]
		result = append(result, &Text{
			Content: content,
			Span:    advance(tb, content),
		})
	}

	return result
}

// advance writes raw to tb and returns the span it occupied.
func advance(tb *buffer.TextBuffer, raw string) Span {
	span := Span{
		Start:      tb.ByteOffset(),
		UTF16Start: tb.UTF16Offset(),
	}
	tb.Write(raw)
	span.End = tb.ByteOffset()
	span.UTF16End = tb.UTF16Offset()
	return span
}
