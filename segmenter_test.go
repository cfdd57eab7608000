package gifintext

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// want 是测试中期望片段的简写
type want struct {
	typ SegmentType
	raw string
	url string
}

func txt(s string) want        { return want{typ: SegmentTypeText, raw: s} }
func gif(raw, url string) want { return want{typ: SegmentTypeResource, raw: raw, url: url} }

// describe 将片段转为可比较的形式
func describe(segments []Segment) []want {
	result := make([]want, 0, len(segments))
	for _, seg := range segments {
		w := want{typ: seg.GetSegmentType(), raw: seg.Raw()}
		if r, ok := seg.(*Resource); ok {
			w.url = r.URL
		}
		result = append(result, w)
	}
	return result
}

// TestSegment 测试默认标记的拆分
func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []want
	}{
		{
			name:  "empty input",
			input: "",
			want:  []want{},
		},
		{
			name:  "no markers",
			input: "hello world",
			want:  []want{txt("hello world")},
		},
		{
			name:  "single marker",
			input: "![GIF](http://a.com/b.gif)",
			want:  []want{gif("![GIF](http://a.com/b.gif)", "http://a.com/b.gif")},
		},
		{
			name:  "mixed",
			input: "A ![GIF](x) B",
			want:  []want{txt("A "), gif("![GIF](x)", "x"), txt(" B")},
		},
		{
			name:  "adjacent markers",
			input: "![GIF](a)![GIF](b)",
			want:  []want{gif("![GIF](a)", "a"), gif("![GIF](b)", "b")},
		},
		{
			name:  "malformed marker",
			input: "![GIF](unterminated",
			want:  []want{txt("![GIF](unterminated")},
		},
		{
			name:  "url truncated at first closing paren",
			input: "![GIF](a)b)",
			want:  []want{gif("![GIF](a)", "a"), txt("b)")},
		},
		{
			name:  "empty url",
			input: "x![GIF]()y",
			want:  []want{txt("x"), gif("![GIF]()", ""), txt("y")},
		},
		{
			name:  "marker broken by newline",
			input: "![GIF](a\nb)",
			want:  []want{txt("![GIF](a\nb)")},
		},
		{
			name:  "label is case sensitive",
			input: "![gif](x)",
			want:  []want{txt("![gif](x)")},
		},
		{
			name:  "nested marker",
			input: "![GIF](![GIF](x))",
			want:  []want{gif("![GIF](![GIF](x)", "![GIF](x"), txt(")")},
		},
		{
			name:  "extra bang before marker",
			input: "!![GIF](x)",
			want:  []want{txt("!"), gif("![GIF](x)", "x")},
		},
		{
			name:  "text between markers on several lines",
			input: "First gif: ![GIF](https://g/1.gif)\nSecond gif: ![GIF](https://g/2.gif?a=1&b=2)\n",
			want: []want{
				txt("First gif: "),
				gif("![GIF](https://g/1.gif)", "https://g/1.gif"),
				txt("\nSecond gif: "),
				gif("![GIF](https://g/2.gif?a=1&b=2)", "https://g/2.gif?a=1&b=2"),
				txt("\n"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describe(SegmentText(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentText(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSegment_EmptyReturnsNil 测试空输入返回 nil
func TestSegment_EmptyReturnsNil(t *testing.T) {
	if got := SegmentText(""); got != nil {
		t.Errorf("SegmentText(\"\") = %v, want nil", got)
	}
}

// TestSegment_Spans 测试字节和 UTF-16 偏移
func TestSegment_Spans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "ascii",
			input: "A ![GIF](x) B",
			want: []Span{
				{Start: 0, End: 2, UTF16Start: 0, UTF16End: 2},
				{Start: 2, End: 11, UTF16Start: 2, UTF16End: 11},
				{Start: 11, End: 13, UTF16Start: 11, UTF16End: 13},
			},
		},
		{
			name:  "surrogate pairs",
			input: "😀![GIF](u)😀",
			want: []Span{
				{Start: 0, End: 4, UTF16Start: 0, UTF16End: 2},
				{Start: 4, End: 13, UTF16Start: 2, UTF16End: 11},
				{Start: 13, End: 17, UTF16Start: 11, UTF16End: 13},
			},
		},
		{
			name:  "cjk url",
			input: "![GIF](图)",
			want: []Span{
				{Start: 0, End: 11, UTF16Start: 0, UTF16End: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := SegmentText(tt.input)
			got := make([]Span, 0, len(segments))
			for _, seg := range segments {
				got = append(got, seg.GetSpan())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("spans of %q = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// reconstructionCorpus 用于还原和连续性测试
var reconstructionCorpus = []string{
	"",
	"plain",
	"![GIF](a)",
	"![GIF](a)![GIF](b)",
	"A ![GIF](x) B ![GIF](y)",
	"![GIF](",
	"![GIF]()",
	")))![GIF](((",
	"![GIF](a\nb) ![GIF](c)",
	"😀 ![GIF](https://例子.com/😀.gif) 你好",
	"\xff\xfe![GIF](bad\xffbytes)\xff",
	strings.Repeat("![GIF](x) text ", 50),
}

// TestSegment_Reconstruction 测试 Join(SegmentText(s)) == s 且片段首尾相接
func TestSegment_Reconstruction(t *testing.T) {
	for _, input := range reconstructionCorpus {
		t.Run(fmt.Sprintf("%.20q", input), func(t *testing.T) {
			segments := SegmentText(input)
			if got := Join(segments); got != input {
				t.Fatalf("Join(SegmentText(%q)) = %q", input, got)
			}

			byteCursor, utf16Cursor := 0, 0
			for i, seg := range segments {
				span := seg.GetSpan()
				if span.Start != byteCursor || span.UTF16Start != utf16Cursor {
					t.Fatalf("segment %d starts at (%d,%d), want (%d,%d)",
						i, span.Start, span.UTF16Start, byteCursor, utf16Cursor)
				}
				if input[span.Start:span.End] != seg.Raw() {
					t.Errorf("segment %d span text = %q, want %q", i, input[span.Start:span.End], seg.Raw())
				}
				if span.Len() == 0 {
					t.Errorf("segment %d is empty", i)
				}
				byteCursor, utf16Cursor = span.End, span.UTF16End
			}
			if byteCursor != len(input) || utf16Cursor != UTF16Len(input) {
				t.Errorf("segments end at (%d,%d), want (%d,%d)",
					byteCursor, utf16Cursor, len(input), UTF16Len(input))
			}
		})
	}
}

// TestSegment_NoAdjacentText 测试不会出现两个相邻的文本片段
func TestSegment_NoAdjacentText(t *testing.T) {
	for _, input := range reconstructionCorpus {
		segments := SegmentText(input)
		for i := 1; i < len(segments); i++ {
			if segments[i-1].GetSegmentType() == SegmentTypeText && segments[i].GetSegmentType() == SegmentTypeText {
				t.Errorf("SegmentText(%q) has adjacent text segments at %d", input, i)
			}
		}
	}
}

// TestNewSegmenter_Label 测试自定义标记
func TestNewSegmenter_Label(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		input  string
		want   []want
		prefix string
	}{
		{
			name:   "custom label",
			label:  "STICKER",
			input:  "x ![STICKER](s) ![GIF](g)",
			want:   []want{txt("x "), gif("![STICKER](s)", "s"), txt(" ![GIF](g)")},
			prefix: "![STICKER](",
		},
		{
			name:   "regex metacharacters are literal",
			label:  "a.b",
			input:  "![a.b](u) ![axb](v)",
			want:   []want{gif("![a.b](u)", "u"), txt(" ![axb](v)")},
			prefix: "![a.b](",
		},
		{
			name:   "empty label keeps default",
			label:  "",
			input:  "![GIF](g)",
			want:   []want{gif("![GIF](g)", "g")},
			prefix: "![GIF](",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegmenter(WithLabel(tt.label))
			if s.Prefix() != tt.prefix {
				t.Errorf("Prefix() = %q, want %q", s.Prefix(), tt.prefix)
			}
			got := describe(s.Segment(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestDefaultSegmenter 测试默认拆分器为单例
func TestDefaultSegmenter(t *testing.T) {
	a, b := DefaultSegmenter(), DefaultSegmenter()
	if a != b {
		t.Error("DefaultSegmenter() should return the same instance")
	}
	if a.Label() != DefaultLabel {
		t.Errorf("Label() = %q, want %q", a.Label(), DefaultLabel)
	}
}

// TestSegment_Concurrent 测试并发调用
func TestSegment_Concurrent(t *testing.T) {
	input := "A ![GIF](x) B ![GIF](y) C"
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Join(SegmentText(input)); got != input {
					t.Errorf("Join(SegmentText()) = %q, want %q", got, input)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestSegmentType_String 测试类型名称
func TestSegmentType_String(t *testing.T) {
	tests := []struct {
		typ  SegmentType
		want string
	}{
		{SegmentTypeText, "text"},
		{SegmentTypeResource, "gif"},
		{SegmentType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("SegmentType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

// BenchmarkSegment 基准测试拆分
func BenchmarkSegment(b *testing.B) {
	input := strings.Repeat("some text ![GIF](https://media.example.com/a.gif) more text\n", 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SegmentText(input)
	}
}
