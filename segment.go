package gifintext

import "github.com/riverfjs/gifintext-go/internal/types"

// 导出类型别名
type (
	Segment     = types.Segment
	SegmentType = types.SegmentType
	Span        = types.Span
	Text        = types.Text
	Resource    = types.Resource
)

const (
	SegmentTypeText     = types.SegmentTypeText
	SegmentTypeResource = types.SegmentTypeResource
)
