package gifintext

import (
	"io"
	"log"
	"os"
)

// Logger 接收 HTML 导出中的非致命问题。目前只有一类：某个文本片段的
// Markdown 转换失败，此时该片段回退为转义后的纯文本，HTML 本身不返回错误。
var Logger = log.New(os.Stderr, "[gifintext] ", log.LstdFlags)

// SetLogger 替换 Logger；传入 nil 时丢弃这些日志。
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	Logger = logger
}
