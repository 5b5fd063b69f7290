package walker

import (
	"log"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/riverfjs/mathify-go/internal/types"
)

func testLogger() *log.Logger {
	return log.New(&strings.Builder{}, "", 0)
}

// parseBody 解析 HTML 片段并返回 body 节点
func parseBody(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if body == nil {
		t.Fatal("no body element")
	}
	return body
}

func renderToString(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("html.Render() error: %v", err)
	}
	return b.String()
}

func compiled(t *testing.T, cfg types.Config) *types.Compiled {
	t.Helper()
	c, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return c
}

// TestSplice 替换保持兄弟顺序
func TestSplice(t *testing.T) {
	body := parseBody(t, "<p>a</p><p>b</p><p>c</p>")
	mid := body.FirstChild.NextSibling
	splice(body, mid, []*html.Node{
		{Type: html.TextNode, Data: "x"},
		{Type: html.TextNode, Data: "y"},
	})
	got := renderToString(t, body)
	want := "<body><p>a</p>xy<p>c</p></body>"
	if got != want {
		t.Errorf("splice result = %q, want %q", got, want)
	}
}

// TestScriptMathStyle type 属性按分号切分，mode 字段决定样式
func TestScriptMathStyle(t *testing.T) {
	w := New(compiled(t, types.DefaultConfig()), nil, testLogger())
	tests := []struct {
		typ   string
		style types.Style
		ok    bool
	}{
		{"math/tex", types.StyleInline, true},
		{"MATH/TEX", types.StyleInline, true},
		{"math/tex; mode=display", types.StyleDisplay, true},
		{"math/tex;mode=display", types.StyleDisplay, true},
		{"math/tex; mode=inline", types.StyleInline, true},
		{"text/javascript", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		node := &html.Node{
			Type: html.ElementNode,
			Data: "script",
			Attr: []html.Attribute{{Key: "type", Val: tt.typ}},
		}
		style, ok := w.scriptMathStyle(node)
		if ok != tt.ok || (ok && style != tt.style) {
			t.Errorf("scriptMathStyle(%q) = (%v, %v), want (%v, %v)", tt.typ, style, ok, tt.style, tt.ok)
		}
	}
}

// TestWalk_EnvironmentRun \begin{ 开头的文本整段按 display 处理
func TestWalk_EnvironmentRun(t *testing.T) {
	body := parseBody(t, `<p>\begin{align} x \end{align}</p>`)
	var gotStyle types.Style
	var gotSource string
	render := func(source string, style types.Style) (string, error) {
		gotSource, gotStyle = source, style
		return "<em>ok</em>", nil
	}
	w := New(compiled(t, types.DefaultConfig()), render, testLogger())
	w.Walk(body)
	if gotStyle != types.StyleDisplay {
		t.Errorf("style = %v, want display", gotStyle)
	}
	if !strings.HasPrefix(gotSource, `\begin{align}`) {
		t.Errorf("source = %q, want full run", gotSource)
	}
	got := renderToString(t, body)
	if !strings.Contains(got, "<span><em>ok</em></span>") {
		t.Errorf("rendered output missing wrapper span: %q", got)
	}
}

// TestWalk_TextWithoutMath 无公式的文本节点原样保留
func TestWalk_TextWithoutMath(t *testing.T) {
	body := parseBody(t, "<p>nothing to see</p>")
	render := func(string, types.Style) (string, error) {
		t.Fatal("render should not be called")
		return "", nil
	}
	w := New(compiled(t, types.DefaultConfig()), render, testLogger())
	w.Walk(body)
	got := renderToString(t, body)
	if got != "<body><p>nothing to see</p></body>" {
		t.Errorf("tree changed: %q", got)
	}
}
