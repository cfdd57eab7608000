package types

// Symbol 定义预览中各元素的显示符号
type Symbol struct {
	GIF     string
	Unknown string
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		GIF:     "🖼",
		Unknown: "❓",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Symbol *Symbol
	// Markdown renders text segments as Markdown in HTML output.
	Markdown bool
	// AltText is the alt attribute of <img> tags in HTML output.
	AltText string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Symbol:  DefaultSymbol(),
		AltText: "GIF",
	}
}
