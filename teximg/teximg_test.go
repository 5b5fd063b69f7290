package teximg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mathify "github.com/riverfjs/mathify-go"
)

// pngBytes 生成一张 1x1 的合法 PNG
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

// TestFormulaURL 行内与 display 的 URL 构造
func TestFormulaURL(t *testing.T) {
	c := NewClient()
	got := c.FormulaURL(`\frac{a}{b}`, mathify.StyleInline)
	if !strings.HasPrefix(got, DefaultBaseURL+"?") {
		t.Errorf("FormulaURL() = %q, wrong base", got)
	}
	if strings.Contains(got, "displaystyle") {
		t.Errorf("FormulaURL() = %q, inline should not add displaystyle", got)
	}

	got = c.FormulaURL("x", mathify.StyleDisplay)
	if !strings.Contains(got, "displaystyle") {
		t.Errorf("FormulaURL() = %q, display should add displaystyle", got)
	}
}

// TestRender_LinkMode 链接模式不访问网络，直接产出 <img>
func TestRender_LinkMode(t *testing.T) {
	c := NewClient()
	got, err := c.Render("x+y", mathify.StyleInline)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, `<img src="`+DefaultBaseURL) {
		t.Errorf("Render() = %q, want service img tag", got)
	}
	if !strings.Contains(got, `alt="x+y"`) {
		t.Errorf("Render() = %q, missing alt text", got)
	}
	if !strings.Contains(got, "math-inline") {
		t.Errorf("Render() = %q, missing style class", got)
	}
}

// TestRender_EmbedPNG 嵌入模式下载 PNG 并内联为 data: URI
func TestRender_EmbedPNG(t *testing.T) {
	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, Embed: true}
	got, err := c.Render("x", mathify.StyleInline)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, "data:image/png;base64,") {
		t.Errorf("Render() = %q, want embedded png data URI", got)
	}
}

// TestRender_EmbedSVG SVG 按文本格式识别
func TestRender_EmbedSVG(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><text>x</text></svg>`))
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, Embed: true}
	got, err := c.Render("x", mathify.StyleDisplay)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, "data:image/svg+xml;base64,") {
		t.Errorf("Render() = %q, want embedded svg data URI", got)
	}
}

// TestRender_EmbedRejectsGarbage 非图片响应返回错误，交给上层降级
func TestRender_EmbedRejectsGarbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, Embed: true}
	if _, err := c.Render("x", mathify.StyleInline); err == nil {
		t.Error("Render() should fail for non-image body")
	}
}

// TestRender_EmbedHTTPError 非 200 状态返回错误
func TestRender_EmbedHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, Embed: true}
	if _, err := c.Render("x", mathify.StyleInline); err == nil {
		t.Error("Render() should fail for HTTP 500")
	}
}

// TestSniffImage 魔数与解码器的判定
func TestSniffImage(t *testing.T) {
	if mime, err := sniffImage(pngBytes(t)); err != nil || mime != "image/png" {
		t.Errorf("sniffImage(png) = (%q, %v)", mime, err)
	}
	if mime, err := sniffImage([]byte("  <svg></svg>")); err != nil || mime != "image/svg+xml" {
		t.Errorf("sniffImage(svg) = (%q, %v)", mime, err)
	}
	if _, err := sniffImage([]byte("garbage")); err == nil {
		t.Error("sniffImage(garbage) should fail")
	}
}
