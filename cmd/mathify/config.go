package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	mathify "github.com/riverfjs/mathify-go"
)

// settings CLI 配置，来自默认值 + TOML 文件 + 命令行旗标，按此顺序覆盖
type settings struct {
	Renderer     string   `toml:"renderer"`
	ImageService string   `toml:"image_service"`
	SkipTags     []string `toml:"skip_tags"`
	Namespace    string   `toml:"namespace"`
	Environments bool     `toml:"environments"`
	Preserve     bool     `toml:"preserve_original"`

	Delimiters struct {
		Inline  []delimiterPair `toml:"inline"`
		Display []delimiterPair `toml:"display"`
	} `toml:"delimiters"`
}

type delimiterPair struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// defaultSettings 返回与库默认值一致的 CLI 配置
func defaultSettings() settings {
	return settings{
		Renderer:     "unicode",
		Environments: true,
	}
}

// loadSettings 把 TOML 文件解码到 s 上，文件里没有的字段保持原值
func loadSettings(path string, s *settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// parsePairs 解析 "left,right" 形式的旗标值
func parsePairs(values []string) ([]mathify.DelimiterPair, error) {
	pairs := make([]mathify.DelimiterPair, 0, len(values))
	for _, v := range values {
		left, right, ok := strings.Cut(v, ",")
		if !ok || left == "" || right == "" {
			return nil, fmt.Errorf("invalid delimiter pair %q, want \"left,right\"", v)
		}
		pairs = append(pairs, mathify.DelimiterPair{Left: left, Right: right})
	}
	return pairs, nil
}

// options 把生效的配置翻译成库的 Option 列表
func (s settings) options() []mathify.Option {
	var opts []mathify.Option
	if len(s.SkipTags) > 0 {
		opts = append(opts, mathify.WithSkipTags(s.SkipTags...))
	}
	if s.Namespace != "" {
		opts = append(opts, mathify.WithNamespace(s.Namespace))
	}
	opts = append(opts,
		mathify.WithProcessEnvironments(s.Environments),
		mathify.WithPreserveOriginalContent(s.Preserve),
	)
	if len(s.Delimiters.Inline) > 0 {
		pairs := make([]mathify.DelimiterPair, len(s.Delimiters.Inline))
		for i, p := range s.Delimiters.Inline {
			pairs[i] = mathify.DelimiterPair{Left: p.Left, Right: p.Right}
		}
		opts = append(opts, mathify.WithInlineDelimiters(pairs...))
	}
	if len(s.Delimiters.Display) > 0 {
		pairs := make([]mathify.DelimiterPair, len(s.Delimiters.Display))
		for i, p := range s.Delimiters.Display {
			pairs[i] = mathify.DelimiterPair{Left: p.Left, Right: p.Right}
		}
		opts = append(opts, mathify.WithDisplayDelimiters(pairs...))
	}
	return opts
}
