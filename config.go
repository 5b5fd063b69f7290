package mathify

import (
	"github.com/riverfjs/mathify-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type DelimiterPair = types.DelimiterPair
type Delimiters = types.Delimiters
type Style = types.Style

const (
	// StyleInline 行内公式
	StyleInline = types.StyleInline
	// StyleDisplay 独立成行的公式
	StyleDisplay = types.StyleDisplay
)

// DefaultConfig returns the default render configuration.
func DefaultConfig() Config {
	return types.DefaultConfig()
}
