package buffer

import (
	"strings"

	"github.com/riverfjs/gifintext-go/internal/util"
)

// TextBuffer accumulates text and tracks the current byte and UTF-16 offsets.
type TextBuffer struct {
	parts       []string
	byteOffset  int
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.parts = append(tb.parts, text)
	tb.byteOffset += len(text)
	tb.utf16Offset += util.UTF16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	return tb.byteOffset
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(tb.byteOffset)
	for _, p := range tb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

