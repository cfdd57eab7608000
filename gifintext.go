// Package gifintext 将包含 ![GIF](url) 标记的文本拆分为文本片段和 GIF 引用片段
//
// 核心功能：
//   - 按出现顺序将文本拆分为 Text 和 Resource 片段，覆盖整个输入
//   - 每个片段记录字节偏移和 UTF-16 偏移
//   - 支持自定义标记标签（如 ![STICKER](url)）
//   - 生成终端预览或 HTML 片段（不下载图片）
//
// 主要 API：
//   - SegmentText(): 使用默认标记拆分文本
//   - NewSegmenter(): 创建自定义标记的拆分器
//   - Join(): 由片段还原原始文本
//
// 示例：
//
//	for _, seg := range gifintext.SegmentText(text) {
//	    switch s := seg.(type) {
//	    case *gifintext.Text:
//	        // 原样显示文本
//	    case *gifintext.Resource:
//	        // 在 s.URL 显示 GIF
//	    }
//	}
package gifintext

import (
	"strings"

	"github.com/riverfjs/gifintext-go/internal/render"
)

// SegmentText 使用默认的 ![GIF](url) 标记拆分文本
//
// 这个操作不会失败：不匹配的内容（包括缺少右括号的标记）都作为普通文本返回。
// 空输入返回 nil。
func SegmentText(input string) []Segment {
	return DefaultSegmenter().Segment(input)
}

// Plain 将片段渲染为终端预览文本
//
// 参数：
//   - segments: 片段列表
//   - config: 渲染配置，如为 nil 则使用默认配置
func Plain(segments []Segment, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}
	return render.Plain(segments, config)
}

// HTML 将片段渲染为 HTML 片段
//
// GIF 引用变为 <img> 标签；文本被转义，或在 config.Markdown 为 true 时按 Markdown 渲染。
// Markdown 渲染失败时回退为转义文本并通过 Logger 记录。
func HTML(segments []Segment, config *RenderConfig) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	var sb strings.Builder
	if err := render.WriteHTML(&sb, segments, config, Logger); err != nil {
		return "", err
	}
	return sb.String(), nil
}
