package mathext

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	mathify "github.com/riverfjs/mathify-go"
)

// Renderer 把公式节点交给 RenderFunc，失败降级为转义后的原文
type Renderer struct {
	render mathify.RenderFunc
}

// NewRenderer returns a new renderer for math nodes.
func NewRenderer(render mathify.RenderFunc) renderer.NodeRenderer {
	return &Renderer{render: render}
}

// RegisterFuncs registers the renderer for math nodes.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInline, r.renderInline)
	reg.Register(KindBlock, r.renderBlock)
}

func (r *Renderer) renderInline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	return r.renderMath(w, source, n, mathify.StyleInline, "$")
}

func (r *Renderer) renderBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	return r.renderMath(w, source, n, mathify.StyleDisplay, "$$")
}

func (r *Renderer) renderMath(w util.BufWriter, source []byte, n ast.Node, style mathify.Style, delimiter string) (ast.WalkStatus, error) {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		segment := c.(*ast.Text).Segment
		buf.Write(segment.Value(source))
	}
	src := buf.String()

	markup, err := r.render(src, style)
	if err != nil {
		mathify.Logger.Printf("math render failed (%s): %v", style, err)
		_, _ = w.Write(util.EscapeHTML([]byte(delimiter + src + delimiter)))
		return ast.WalkSkipChildren, nil
	}
	_, _ = w.WriteString(markup)
	return ast.WalkSkipChildren, nil
}
