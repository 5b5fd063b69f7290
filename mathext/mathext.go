// Package mathext 是 goldmark 的公式扩展
//
// 在 Markdown 里识别 $...$（行内）和 $$...$$（display）公式，
// 通过与 HTML 扫描一致的 RenderFunc 渲染，失败时同样降级为
// 转义后的原文。配合任意 goldmark 实例使用：
//
//	md := goldmark.New(goldmark.WithExtensions(mathext.New(texuni.Renderer())))
package mathext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	mathify "github.com/riverfjs/mathify-go"
)

// Extension 公式扩展，实现 goldmark.Extender
type Extension struct {
	render mathify.RenderFunc
}

// New creates a math extension backed by the given renderer.
func New(render mathify.RenderFunc) *Extension {
	return &Extension{render: render}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewInlineParser(), 501),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewRenderer(e.render), 501),
	))
}
