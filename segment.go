package mathify

import (
	"github.com/riverfjs/mathify-go/internal/types"
)

// 导出类型别名
type Segment = types.Segment
type SegmentKind = types.SegmentKind

const (
	// SegmentText 普通文本片段
	SegmentText = types.SegmentText
	// SegmentMath 公式片段
	SegmentMath = types.SegmentMath
)
