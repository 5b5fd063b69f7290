package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidConfig 配置错误：非法正则、空定界符、非法命名空间等
//
// 所有配置校验失败都包装这个哨兵错误，在遍历开始之前返回给调用方。
var ErrInvalidConfig = errors.New("mathify: invalid config")

// Style 表示公式的排版样式
type Style int

const (
	// StyleInline 行内公式
	StyleInline Style = iota
	// StyleDisplay 独立成行的公式
	StyleDisplay
)

// String returns the string representation of Style.
func (s Style) String() string {
	switch s {
	case StyleInline:
		return "inline"
	case StyleDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// RenderFunc 外部公式渲染器
//
// 输入公式源码和样式，返回渲染后的 HTML 片段。渲染失败返回 error，
// 由调用侧的降级策略处理（记录日志并保留原文），不会向外传播。
type RenderFunc func(source string, style Style) (string, error)

// DelimiterPair 一对公式定界符，Left 和 Right 可以相同（如 $$）
type DelimiterPair struct {
	Left  string
	Right string
}

// Delimiters 定界符配置，按样式分组
//
// 扫描时先按列表顺序处理所有 inline 对，再按列表顺序处理所有 display 对。
// 两个定界符在同一位置都能匹配时，这个顺序决定优先级。
type Delimiters struct {
	Inline  []DelimiterPair
	Display []DelimiterPair
}

// SegmentKind 片段类型
type SegmentKind int

const (
	// SegmentText 普通文本片段
	SegmentText SegmentKind = iota
	// SegmentMath 公式片段
	SegmentMath
)

// Segment 文本切分结果中的一个片段
//
// Text 片段只填 Raw；Math 片段的 Source 是两个定界符之间的内容，
// Raw 包含定界符本身。对任意输入，所有片段的 Raw 连接起来恒等于原文。
type Segment struct {
	Kind   SegmentKind
	Source string
	Raw    string
	Style  Style
}

// Config 渲染配置
//
// 每次顶层调用时从默认值加调用方覆盖构建一次，经 Compile 校验后
// 在整个遍历过程中只读。
type Config struct {
	// Namespace 为生成的 data-* 属性加前缀，须匹配 ^[a-z]+-?$
	Namespace string
	// SkipTags 不进入的标签名集合（大小写不敏感）
	SkipTags []string
	// IgnoreClass 匹配 class 属性则跳过该元素的正则
	IgnoreClass string
	// ProcessClass 匹配 class 属性则强制进入该元素的正则，优先于跳过规则
	ProcessClass string
	// ProcessScriptType 作为公式源处理的 <script> type，空串禁用
	ProcessScriptType string
	// ProcessEnvironments 文本以 \begin{ 开头时整段按 display 公式处理
	ProcessEnvironments bool
	// PreserveOriginalContent 在渲染结果上保留原始公式源码属性
	PreserveOriginalContent bool
	// Delimiters 定界符列表
	Delimiters Delimiters
}

// DefaultConfig 返回默认渲染配置
func DefaultConfig() Config {
	return Config{
		SkipTags:            []string{"script", "noscript", "style", "textarea", "pre", "code", "annotation", "annotation-xml"},
		IgnoreClass:         "tex2jax_ignore",
		ProcessClass:        "tex2jax_process",
		ProcessScriptType:   "math/tex",
		ProcessEnvironments: true,
		Delimiters: Delimiters{
			Inline:  []DelimiterPair{{Left: `\(`, Right: `\)`}},
			Display: []DelimiterPair{{Left: `\[`, Right: `\]`}, {Left: "$$", Right: "$$"}},
		},
	}
}

// Compiled 编译后的配置：正则已编译、标签集合已小写化
type Compiled struct {
	Config
	SkipSet   map[string]bool
	IgnoreRe  *regexp.Regexp // nil 表示永不匹配
	ProcessRe *regexp.Regexp // nil 表示永不匹配

	// OriginalContentAttr 保存原始源码的属性名，含命名空间前缀
	OriginalContentAttr string
}

var namespaceRe = regexp.MustCompile(`^[a-z]+-?$`)

// Compile 校验并编译配置
//
// 所有错误都包装 ErrInvalidConfig，在任何树遍历开始之前返回。
func (c Config) Compile() (*Compiled, error) {
	out := &Compiled{Config: c}

	var err error
	if c.IgnoreClass != "" {
		out.IgnoreRe, err = regexp.Compile(c.IgnoreClass)
		if err != nil {
			return nil, fmt.Errorf("%w: ignore class pattern: %v", ErrInvalidConfig, err)
		}
	}
	if c.ProcessClass != "" {
		out.ProcessRe, err = regexp.Compile(c.ProcessClass)
		if err != nil {
			return nil, fmt.Errorf("%w: process class pattern: %v", ErrInvalidConfig, err)
		}
	}

	ns := c.Namespace
	if ns != "" {
		if !namespaceRe.MatchString(ns) {
			return nil, fmt.Errorf("%w: namespace %q must match %s", ErrInvalidConfig, ns, namespaceRe)
		}
		if !strings.HasSuffix(ns, "-") {
			ns += "-"
		}
		out.Namespace = ns
	}
	out.OriginalContentAttr = "data-" + ns + "original-content"

	for _, group := range [][]DelimiterPair{c.Delimiters.Inline, c.Delimiters.Display} {
		for _, pair := range group {
			if pair.Left == "" || pair.Right == "" {
				return nil, fmt.Errorf("%w: empty delimiter in pair %q/%q", ErrInvalidConfig, pair.Left, pair.Right)
			}
		}
	}

	out.SkipSet = make(map[string]bool, len(c.SkipTags))
	for _, tag := range c.SkipTags {
		out.SkipSet[strings.ToLower(tag)] = true
	}

	return out, nil
}
