package types

// SegmentType represents the type of segment.
type SegmentType int

const (
	// SegmentTypeText represents literal text shown verbatim.
	SegmentTypeText SegmentType = iota
	// SegmentTypeResource represents an inline GIF reference.
	SegmentTypeResource
)

// String returns the string representation of SegmentType.
func (st SegmentType) String() string {
	switch st {
	case SegmentTypeText:
		return "text"
	case SegmentTypeResource:
		return "gif"
	default:
		return "unknown"
	}
}

// Span records where a segment sits in the input.
//
// Start/End are byte offsets (half-open). UTF16Start/UTF16End are the same
// positions in UTF-16 code units, which is how most UI toolkits index text.
type Span struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	UTF16Start int `json:"utf16_start"`
	UTF16End   int `json:"utf16_end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Segment is one contiguous piece of segmented input.
type Segment interface {
	GetSegmentType() SegmentType
	GetSpan() Span
	// Raw returns the exact input text the segment covers.
	Raw() string
}

// Text represents a plain text segment.
type Text struct {
	Content string
	Span    Span
}

// GetSegmentType returns SegmentTypeText.
func (t *Text) GetSegmentType() SegmentType {
	return SegmentTypeText
}

// GetSpan returns the segment position.
func (t *Text) GetSpan() Span {
	return t.Span
}

// Raw returns Content.
func (t *Text) Raw() string {
	return t.Content
}

// Resource represents a matched marker such as ![GIF](https://example.com/a.gif).
type Resource struct {
	RawMatch string
	URL      string
	Span     Span
}

// GetSegmentType returns SegmentTypeResource.
func (r *Resource) GetSegmentType() SegmentType {
	return SegmentTypeResource
}

// GetSpan returns the segment position.
func (r *Resource) GetSpan() Span {
	return r.Span
}

// Raw returns RawMatch.
func (r *Resource) Raw() string {
	return r.RawMatch
}
