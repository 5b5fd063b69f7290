package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadSettings_MergesOntoDefaults 文件里没有的字段保持默认值
func TestLoadSettings_MergesOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathify.toml")
	content := `
renderer = "image"
skip_tags = ["pre", "code"]

[[delimiters.inline]]
left = "$"
right = "$"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	s := defaultSettings()
	if err := loadSettings(path, &s); err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}

	if s.Renderer != "image" {
		t.Errorf("Renderer = %q, want %q", s.Renderer, "image")
	}
	if len(s.SkipTags) != 2 || s.SkipTags[0] != "pre" {
		t.Errorf("SkipTags = %v", s.SkipTags)
	}
	if len(s.Delimiters.Inline) != 1 || s.Delimiters.Inline[0].Left != "$" {
		t.Errorf("Delimiters.Inline = %v", s.Delimiters.Inline)
	}
	// 文件未提及的字段保持默认
	if !s.Environments {
		t.Error("Environments should keep its default true")
	}
	if s.ImageService != "" {
		t.Errorf("ImageService = %q, want empty", s.ImageService)
	}
}

// TestLoadSettings_MissingFile 文件不存在返回错误
func TestLoadSettings_MissingFile(t *testing.T) {
	s := defaultSettings()
	if err := loadSettings("/nonexistent/mathify.toml", &s); err == nil {
		t.Error("loadSettings() should fail for missing file")
	}
}

// TestParsePairs 旗标值解析
func TestParsePairs(t *testing.T) {
	pairs, err := parsePairs([]string{`\(,\)`, "$,$"})
	if err != nil {
		t.Fatalf("parsePairs() error: %v", err)
	}
	if len(pairs) != 2 || pairs[0].Left != `\(` || pairs[0].Right != `\)` {
		t.Errorf("parsePairs() = %v", pairs)
	}

	if _, err := parsePairs([]string{"nocomma"}); err == nil {
		t.Error("parsePairs() should fail without comma")
	}
	if _, err := parsePairs([]string{",x"}); err == nil {
		t.Error("parsePairs() should fail for empty left token")
	}
}

// TestPickRenderer 渲染器选择
func TestPickRenderer(t *testing.T) {
	s := defaultSettings()
	if _, err := pickRenderer(s); err != nil {
		t.Errorf("pickRenderer(unicode) error: %v", err)
	}
	s.Renderer = "image-embed"
	if _, err := pickRenderer(s); err != nil {
		t.Errorf("pickRenderer(image-embed) error: %v", err)
	}
	s.Renderer = "bogus"
	if _, err := pickRenderer(s); err == nil {
		t.Error("pickRenderer(bogus) should fail")
	}
}
