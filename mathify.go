// Package mathify 在 HTML 内容树中查找 LaTeX 公式并替换为渲染结果
//
// 这个包扫描一棵 x/net/html 文档树，定位由定界符（默认 \(...\)、
// \[...\]、$$...$$）包裹的公式区域，调用外部渲染器把公式源码转成
// HTML 片段，再原地替换回树里。渲染器由调用方以 RenderFunc 提供，
// 本仓库也附带了几个现成实现（texuni、teximg）。
//
// 核心功能：
//   - 括号感知的定界符扫描，\{ \} 转义不干扰匹配
//   - 文本切分满足 round-trip 不变量：片段连接恒等于原文
//   - skip/ignore/process 规则控制哪些元素被进入
//   - 渲染失败降级为原文文本，永不中断遍历
//
// 主要 API：
//   - Render(): 渲染一棵已解析的树
//   - RenderHTML(): 字符串进、字符串出
//   - Split(): 只做文本切分，不动树
//
// 示例：
//
//	doc, _ := html.Parse(strings.NewReader(src))
//	err := mathify.Render(doc, texuni.Renderer())
//	if err != nil {
//	    // 只有配置错误会走到这里
//	}
package mathify

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/riverfjs/mathify-go/internal/delim"
	"github.com/riverfjs/mathify-go/internal/types"
	"github.com/riverfjs/mathify-go/internal/walker"
)

// RenderFunc 外部公式渲染器，见 internal/types
type RenderFunc = types.RenderFunc

// Render 渲染 root 子树中的全部公式
//
// root 为 nil 时静默返回；root 是整篇文档时从 <body> 开始，没有
// <body> 视为无事可做。只有配置错误（包装 ErrInvalidConfig）会
// 返回 error，并且在任何树节点被修改之前返回；渲染失败只降级，
// 不会成为错误。
func Render(root *html.Node, render RenderFunc, opts ...Option) error {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return err
	}
	if root == nil || render == nil {
		return nil
	}
	if root.Type == html.DocumentNode {
		root = findElement(root, func(n *html.Node) bool { return n.Data == "body" })
		if root == nil {
			return nil
		}
	}
	walker.New(cfg, render, Logger).Walk(root)
	return nil
}

// RenderByID 只渲染 id 属性等于 id 的元素子树
//
// 找不到对应元素时静默返回 nil，不算错误。
func RenderByID(doc *html.Node, id string, render RenderFunc, opts ...Option) error {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return err
	}
	if doc == nil || render == nil || id == "" {
		return nil
	}
	target := findElement(doc, func(n *html.Node) bool {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return true
			}
		}
		return false
	})
	if target == nil {
		return nil
	}
	walker.New(cfg, render, Logger).Walk(target)
	return nil
}

// RenderHTML 解析 src、渲染公式、序列化回字符串
func RenderHTML(src string, render RenderFunc, opts ...Option) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	if err := Render(doc, render, opts...); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Split 按配置的定界符切分一段文本，不做任何渲染
//
// 产出的片段满足 round-trip 不变量。只有配置错误会返回 error。
func Split(text string, opts ...Option) ([]Segment, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return delim.Split(text, cfg.Delimiters), nil
}

// findElement 深度优先查找第一个满足条件的元素节点
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}
