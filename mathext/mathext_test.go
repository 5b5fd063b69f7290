package mathext

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/yuin/goldmark"

	mathify "github.com/riverfjs/mathify-go"
)

// convert 用带扩展的 goldmark 转换一段 Markdown
func convert(t *testing.T, render mathify.RenderFunc, markdown string) string {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(New(render)))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	return buf.String()
}

func okRender(source string, style mathify.Style) (string, error) {
	return fmt.Sprintf(`<span class="math-%s">%s</span>`, style, source), nil
}

// TestInlineMath $x$ 按行内公式渲染
func TestInlineMath(t *testing.T) {
	got := convert(t, okRender, "a $x+y$ b")
	if !strings.Contains(got, `<span class="math-inline">x+y</span>`) {
		t.Errorf("Convert() = %q, missing inline math", got)
	}
}

// TestDisplayMath $$x$$ 按 display 公式渲染
func TestDisplayMath(t *testing.T) {
	got := convert(t, okRender, "before $$E=mc^2$$ after")
	if !strings.Contains(got, `<span class="math-display">E=mc^2</span>`) {
		t.Errorf("Convert() = %q, missing display math", got)
	}
}

// TestUnclosedDollar 未闭合的 $ 保持字面输出
func TestUnclosedDollar(t *testing.T) {
	got := convert(t, okRender, "price is $5 today")
	if strings.Contains(got, "math-") {
		t.Errorf("Convert() = %q, should not contain math", got)
	}
	if !strings.Contains(got, "$5") {
		t.Errorf("Convert() = %q, literal dollar lost", got)
	}
}

// TestMoneyNotMath $ 两侧有空白不算公式
func TestMoneyNotMath(t *testing.T) {
	got := convert(t, okRender, "pay $5 or $10 now")
	if strings.Contains(got, "math-") {
		t.Errorf("Convert() = %q, money amounts should stay literal", got)
	}
}

// TestEscapedDollarInsideMath \$ 不会提前终结公式
func TestEscapedDollarInsideMath(t *testing.T) {
	got := convert(t, okRender, `cost $a\$b$ end`)
	if !strings.Contains(got, `math-inline`) {
		t.Errorf("Convert() = %q, escaped dollar broke the match", got)
	}
}

// TestRenderFailureFallback 渲染失败输出转义后的原文
func TestRenderFailureFallback(t *testing.T) {
	old := mathify.Logger
	mathify.SetLogger(log.New(&strings.Builder{}, "", 0))
	defer mathify.SetLogger(old)

	failing := func(string, mathify.Style) (string, error) {
		return "", errors.New("no renderer")
	}
	got := convert(t, failing, "a $x<y$ b")
	if !strings.Contains(got, "$x&lt;y$") {
		t.Errorf("Convert() = %q, want escaped raw fallback", got)
	}
}

// TestBracesInsideMath 公式内的花括号组不提前终结
func TestBracesInsideMath(t *testing.T) {
	got := convert(t, okRender, `y $$\frac{a}{b}$$ z`)
	if !strings.Contains(got, `math-display`) {
		t.Errorf("Convert() = %q, display math not recognized", got)
	}
	if !strings.Contains(got, `\frac{a}{b}`) {
		t.Errorf("Convert() = %q, source altered", got)
	}
}
