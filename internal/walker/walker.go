// Package walker 实现内容树的递归遍历与原地替换
//
// Walker 深度优先走一棵 x/net/html 树：文本节点交给 delim 切分，
// 公式片段经渲染适配器替换回去；元素节点按 skip/ignore/process
// 规则决定是否进入。渲染失败一律降级为原文文本节点，不会中断遍历。
package walker

import (
	"log"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/mathify-go/internal/delim"
	"github.com/riverfjs/mathify-go/internal/types"
)

// environmentPrefix 环境整段处理的起始标记
const environmentPrefix = `\begin{`

// Walker 单次遍历的上下文：编译后的配置、渲染器和日志
type Walker struct {
	cfg    *types.Compiled
	render types.RenderFunc
	logger *log.Logger
}

// New 创建 Walker
func New(cfg *types.Compiled, render types.RenderFunc, logger *log.Logger) *Walker {
	return &Walker{cfg: cfg, render: render, logger: logger}
}

// Walk 按原始顺序遍历 n 的子节点
//
// 先取 NextSibling 再处理当前子节点，替换操作不影响后续兄弟。
func (w *Walker) Walk(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			w.walkText(n, c)
		case html.ElementNode:
			w.walkElement(c)
		}
		// 其他节点类型（注释、doctype 等）原样保留
		c = next
	}
}

// walkElement 处理一个元素子节点
func (w *Walker) walkElement(c *html.Node) {
	if c.DataAtom == atom.Script {
		if style, ok := w.scriptMathStyle(c); ok {
			source := textContent(c)
			splice(c.Parent, c, []*html.Node{w.renderMath(source, source, style)})
			return
		}
	}

	class := attrValue(c, "class")
	scan := matches(w.cfg.ProcessRe, class) ||
		!(w.cfg.SkipSet[strings.ToLower(c.Data)] || matches(w.cfg.IgnoreRe, class))
	if scan {
		w.Walk(c)
	}
}

// walkText 切分一个文本子节点并把替换序列拼接回原位
func (w *Walker) walkText(parent, c *html.Node) {
	data := c.Data

	if w.cfg.ProcessEnvironments && strings.HasPrefix(strings.TrimLeft(data, " \t\r\n"), environmentPrefix) {
		// 整段按 display 公式处理，失败时替换回完整原文
		splice(parent, c, []*html.Node{w.renderMath(data, data, types.StyleDisplay)})
		return
	}

	segments := delim.Split(data, w.cfg.Delimiters)
	hasMath := false
	for _, seg := range segments {
		if seg.Kind == types.SegmentMath {
			hasMath = true
			break
		}
	}
	if !hasMath {
		return
	}

	replacement := make([]*html.Node, 0, len(segments))
	for _, seg := range segments {
		if seg.Kind == types.SegmentMath {
			replacement = append(replacement, w.renderMath(seg.Source, seg.Raw, seg.Style))
		} else {
			replacement = append(replacement, &html.Node{Type: html.TextNode, Data: seg.Raw})
		}
	}
	splice(parent, c, replacement)
}

// renderMath 渲染适配器：成功产出包装 <span>，失败降级为原文文本节点
//
// raw 是含定界符的原文，失败时原样保留，字符一个不丢。失败只记
// 日志，绝不向上传播。
func (w *Walker) renderMath(source, raw string, style types.Style) *html.Node {
	markup, err := w.render(source, style)
	if err != nil {
		w.logger.Printf("math render failed (%s): %v", style, err)
		return &html.Node{Type: html.TextNode, Data: raw}
	}

	children, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
	})
	if err != nil {
		w.logger.Printf("math render produced unparsable markup (%s): %v", style, err)
		return &html.Node{Type: html.TextNode, Data: raw}
	}

	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	if w.cfg.PreserveOriginalContent {
		span.Attr = append(span.Attr, html.Attribute{Key: w.cfg.OriginalContentAttr, Val: raw})
	}
	for _, child := range children {
		span.AppendChild(child)
	}
	return span
}

// scriptMathStyle 判断 <script> 是否携带公式源，并解析其样式
//
// type 属性按分号切分，第一个字段须等于 ProcessScriptType（大小写
// 不敏感）；后续字段中 mode=display 选择 display，缺省为 inline。
func (w *Walker) scriptMathStyle(c *html.Node) (types.Style, bool) {
	if w.cfg.ProcessScriptType == "" {
		return 0, false
	}
	fields := strings.Split(attrValue(c, "type"), ";")
	if !strings.EqualFold(strings.TrimSpace(fields[0]), w.cfg.ProcessScriptType) {
		return 0, false
	}
	style := types.StyleInline
	for _, field := range fields[1:] {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "mode=display":
			style = types.StyleDisplay
		case "mode=inline", "mode=text":
			style = types.StyleInline
		}
	}
	return style, true
}

// splice 用 replacement 序列原地替换 parent 的子节点 old
//
// 只动 old 本身，前后兄弟的顺序保持不变。
func splice(parent, old *html.Node, replacement []*html.Node) {
	for _, n := range replacement {
		parent.InsertBefore(n, old)
	}
	parent.RemoveChild(old)
}

// attrValue 取属性值，缺失返回空串
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// matches nil 正则视为永不匹配
func matches(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}

// textContent 连接节点下所有文本后代
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}
