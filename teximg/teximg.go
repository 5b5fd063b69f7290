// Package teximg 通过公式图片服务渲染 LaTeX
//
// 把公式源码编码进一个 codecogs 风格的图片 URL。链接模式直接产出
// 指向服务的 <img>；嵌入模式下载图片、校验格式后产出 data: URI，
// 输出的 HTML 不再依赖外部服务可用。
package teximg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	mathify "github.com/riverfjs/mathify-go"
)

// DefaultBaseURL 默认公式图片服务
const DefaultBaseURL = "https://latex.codecogs.com/svg.latex"

// Client 公式图片服务客户端
type Client struct {
	// BaseURL 服务地址，空串使用 DefaultBaseURL
	BaseURL string
	// HTTPClient 下载用的 HTTP 客户端，nil 使用带超时的默认值
	HTTPClient *http.Client
	// Embed 为真时下载图片并内联为 data: URI
	Embed bool
}

// NewClient 创建默认客户端
func NewClient() *Client {
	return &Client{}
}

// Renderer 返回链接模式的 RenderFunc
func Renderer() mathify.RenderFunc {
	return NewClient().Render
}

// EmbeddedRenderer 返回嵌入模式的 RenderFunc
func EmbeddedRenderer() mathify.RenderFunc {
	c := NewClient()
	c.Embed = true
	return c.Render
}

// FormulaURL 生成公式的图片 URL
//
// display 样式加 \displaystyle 前缀，让服务用独立行排版。
func (c *Client) FormulaURL(source string, style mathify.Style) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	tex := strings.TrimSpace(source)
	if style == mathify.StyleDisplay {
		tex = `\displaystyle ` + tex
	}
	return base + "?" + url.QueryEscape(tex)
}

// Render 实现 RenderFunc
func (c *Client) Render(source string, style mathify.Style) (string, error) {
	imgURL := c.FormulaURL(source, style)
	alt := strings.TrimSpace(source)

	if !c.Embed {
		return fmt.Sprintf(`<img src=%q alt=%q class="math math-%s"/>`, imgURL, alt, style), nil
	}

	data, err := c.download(imgURL)
	if err != nil {
		return "", err
	}
	mime, err := sniffImage(data)
	if err != nil {
		return "", fmt.Errorf("formula service returned invalid image: %w", err)
	}
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(`<img src=%q alt=%q class="math math-%s"/>`, uri, alt, style), nil
}

// download 同步下载图片数据
func (c *Client) download(imgURL string) ([]byte, error) {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, imgURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "mathify-go/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download formula image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// sniffImage 校验图片数据并返回 MIME 类型
//
// SVG 是文本格式单独判断；位图交给已注册的解码器
// （png/gif/jpeg 来自标准库，webp 来自 x/image）。
func sniffImage(data []byte) (string, error) {
	head := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(head, []byte("<svg")) || bytes.HasPrefix(head, []byte("<?xml")) {
		return "image/svg+xml", nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	switch format {
	case "png", "gif", "jpeg", "webp":
		return "image/" + format, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", format)
	}
}
