// Package delim 实现括号感知的定界符扫描与文本切分
//
// 这是整个库的算法核心：FindClosing 在花括号深度为零的位置寻找
// 右定界符，SplitPair / Split 据此把一段文本切成有序的
// 文本 / 公式片段序列。切分满足两条不变量：
//
//  1. 所有片段的 Raw 连接起来恒等于输入原文；
//  2. 片段严格有序且互不重叠，公式片段不会被后续定界符对重新扫描。
package delim

import (
	"strings"

	"github.com/riverfjs/mathify-go/internal/types"
)

// FindClosing 从 start 开始扫描 text，返回右定界符 right 第一次
// 在花括号深度 <= 0 的位置出现的下标，找不到返回 -1
//
// 每个位置先检查 right 是否从这里开始（这样以反斜杠开头的
// 右定界符如 \) 才能命中），再处理转义：反斜杠吞掉紧随其后的
// 一个字符，因此 \{ 和 \} 不影响深度计数，\$ 不会被当成终结符。
func FindClosing(text, right string, start int) int {
	depth := 0
	i := start
	for i < len(text) {
		if depth <= 0 && strings.HasPrefix(text[i:], right) {
			return i
		}
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '{':
			depth++
		case '}':
			depth--
		}
		i++
	}
	return -1
}

// SplitPair 对片段序列做一趟切分：只重新扫描 Text 片段，
// Math 片段原样通过
func SplitPair(segments []types.Segment, pair types.DelimiterPair, style types.Style) []types.Segment {
	out := make([]types.Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Kind != types.SegmentText {
			out = append(out, seg)
			continue
		}
		out = append(out, splitText(seg.Raw, pair, style)...)
	}
	return out
}

// splitText 在一段纯文本里交替寻找左定界符和匹配的右定界符
//
// 找到左定界符先把前缀作为 Text 片段排出，再用 FindClosing 找
// 配对的右定界符。右定界符缺失时从左定界符起的剩余文本整体
// 作为最后一个 Text 片段排出：未闭合的定界符降级为普通文本，
// 不报错也不丢字符。
func splitText(text string, pair types.DelimiterPair, style types.Style) []types.Segment {
	var out []types.Segment
	pos := 0
	for {
		rel := strings.Index(text[pos:], pair.Left)
		if rel < 0 {
			break
		}
		left := pos + rel
		if left > pos {
			out = append(out, types.Segment{Kind: types.SegmentText, Raw: text[pos:left]})
			pos = left
		}
		end := FindClosing(text, pair.Right, left+len(pair.Left))
		if end < 0 {
			break
		}
		stop := end + len(pair.Right)
		out = append(out, types.Segment{
			Kind:   types.SegmentMath,
			Source: text[left+len(pair.Left) : end],
			Raw:    text[left:stop],
			Style:  style,
		})
		pos = stop
	}
	if pos < len(text) {
		out = append(out, types.Segment{Kind: types.SegmentText, Raw: text[pos:]})
	}
	return out
}

// Split 按完整定界符配置切分一段文本
//
// 先按列表顺序应用所有 inline 对，再按列表顺序应用所有 display 对。
func Split(text string, delims types.Delimiters) []types.Segment {
	if text == "" {
		return nil
	}
	segments := []types.Segment{{Kind: types.SegmentText, Raw: text}}
	for _, pair := range delims.Inline {
		segments = SplitPair(segments, pair, types.StyleInline)
	}
	for _, pair := range delims.Display {
		segments = SplitPair(segments, pair, types.StyleDisplay)
	}
	return segments
}
