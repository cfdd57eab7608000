package gifintext

import (
	"sync"

	"github.com/riverfjs/gifintext-go/internal/types"
)

// 导出类型别名
type Symbol = types.Symbol
type RenderConfig = types.RenderConfig

var (
	defaultSegmenter     *Segmenter
	defaultSegmenterOnce sync.Once

	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultSegmenter returns the segmenter for ![GIF](url) markers (singleton).
func DefaultSegmenter() *Segmenter {
	defaultSegmenterOnce.Do(func() {
		defaultSegmenter = NewSegmenter()
	})
	return defaultSegmenter
}

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
