package gifintext

import (
	"strings"

	"github.com/riverfjs/gifintext-go/internal/buffer"
	"github.com/riverfjs/gifintext-go/internal/util"
)

// Join concatenates the raw text of segments in order.
//
// For any s, Join(SegmentText(s)) == s.
func Join(segments []Segment) string {
	tb := buffer.New()
	for _, seg := range segments {
		tb.Write(seg.Raw())
	}
	return tb.String()
}

// URLs returns the URL of every Resource segment in order of appearance.
func URLs(segments []Segment) []string {
	var urls []string
	for _, seg := range segments {
		if r, ok := seg.(*Resource); ok {
			urls = append(urls, r.URL)
		}
	}
	return urls
}

// ExtractURL strips prefix and the closing ")" from a raw marker.
//
// rawMatch must start with prefix; Segment guarantees this for every
// Resource it returns. Anything else is returned unchanged.
func ExtractURL(rawMatch, prefix string) string {
	if !strings.HasPrefix(rawMatch, prefix) {
		return rawMatch
	}
	url := strings.TrimPrefix(rawMatch, prefix)
	return strings.TrimSuffix(url, ")")
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Span.UTF16Start and Span.UTF16End are measured the same way.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}
