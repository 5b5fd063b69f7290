package mathify

import (
	"log"
	"os"
)

// Logger 全局日志记录器，渲染失败的降级在这里留痕
var Logger = log.New(os.Stderr, "[mathify] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
