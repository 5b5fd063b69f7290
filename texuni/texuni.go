// Package texuni 将 LaTeX 公式源码转换为 Unicode 文本
//
// 这是一个离线的 RenderFunc 实现：不依赖浏览器引擎，也不访问网络。
//
// 设计原则：
//  1. 数据驱动 — 符号映射集中在 symbols.go
//  2. 鲁棒降级 — 未知命令原样输出，不报错
//  3. 标准 LaTeX 语法 — 可选参数用 [...]
//  4. Unicode 优先 — 无法表示时退回可读的 ASCII 近似
//
// 只有结构性破损的输入（未闭合的花括号组、没有 \end 的环境）
// 返回错误，让上层的渲染降级路径接手。
package texuni

import (
	"errors"
	"fmt"
	"html"
	"strings"

	mathify "github.com/riverfjs/mathify-go"
)

var (
	// ErrUnclosedGroup 花括号组没有闭合
	ErrUnclosedGroup = errors.New("texuni: unclosed group")
	// ErrUnterminatedEnvironment \begin 没有配对的 \end
	ErrUnterminatedEnvironment = errors.New("texuni: unterminated environment")
)

// Convert 将 LaTeX 源码转换为 Unicode 文本
func Convert(source string) (string, error) {
	p := &parser{src: []rune(source)}
	var b strings.Builder
	for p.pos < len(p.src) {
		s, err := p.parseToken()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Renderer 返回基于 Convert 的 RenderFunc
//
// 输出经过 HTML 转义的纯文本，display 和 inline 走同一条转换路径。
func Renderer() mathify.RenderFunc {
	return func(source string, _ mathify.Style) (string, error) {
		out, err := Convert(source)
		if err != nil {
			return "", err
		}
		return html.EscapeString(strings.TrimSpace(out)), nil
	}
}

// parser 递归下降转换引擎
type parser struct {
	src []rune
	pos int
}

// parseToken 消费并转换一个词法单元
func (p *parser) parseToken() (string, error) {
	switch r := p.src[p.pos]; r {
	case '\\':
		return p.parseCommand()
	case '{':
		return p.parseGroup()
	case '^':
		p.pos++
		arg, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return makeSuperscript(arg), nil
	case '_':
		p.pos++
		arg, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return makeSubscript(arg), nil
	case '~':
		p.pos++
		return " ", nil
	default:
		p.pos++
		return string(r), nil
	}
}

// parseGroup 消费 {...}，返回转换后的内容
func (p *parser) parseGroup() (string, error) {
	p.pos++ // '{'
	var b strings.Builder
	for p.pos < len(p.src) {
		if p.src[p.pos] == '}' {
			p.pos++
			return b.String(), nil
		}
		s, err := p.parseToken()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return "", ErrUnclosedGroup
}

// parseArg 消费一个参数：花括号组、命令或单个字符
func (p *parser) parseArg() (string, error) {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return "", nil
	}
	switch p.src[p.pos] {
	case '{':
		return p.parseGroup()
	case '\\':
		return p.parseCommand()
	default:
		r := p.src[p.pos]
		p.pos++
		return string(r), nil
	}
}

// parseOptional 消费可选参数 [...]，没有则返回空串
func (p *parser) parseOptional() string {
	if p.pos >= len(p.src) || p.src[p.pos] != '[' {
		return ""
	}
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) && p.src[p.pos] != ']' {
		b.WriteRune(p.src[p.pos])
		p.pos++
	}
	if p.pos < len(p.src) {
		p.pos++ // ']'
	}
	return b.String()
}

// parseCommand 消费反斜杠开头的命令
func (p *parser) parseCommand() (string, error) {
	p.pos++ // '\'
	if p.pos >= len(p.src) {
		return "\\", nil
	}

	r := p.src[p.pos]
	if !isLetter(r) {
		p.pos++
		if esc, ok := charEscapes[r]; ok {
			return esc, nil
		}
		return string(r), nil
	}

	start := p.pos
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])
	if p.pos < len(p.src) && p.src[p.pos] == '*' {
		p.pos++
	}

	switch name {
	case "begin":
		return p.parseEnvironment()
	case "frac", "dfrac", "tfrac", "cfrac":
		num, err := p.parseArg()
		if err != nil {
			return "", err
		}
		den, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return makeFraction(num, den), nil
	case "sqrt":
		index := p.parseOptional()
		radicand, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return makeSqrt(index, radicand), nil
	case "not":
		arg, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return makeNot(arg), nil
	case "left", "right", "big", "Big", "bigl", "bigr", "Bigl", "Bigr":
		// 定界符本身会随流输出，\left. 的占位点要吞掉
		if p.pos < len(p.src) && p.src[p.pos] == '.' {
			p.pos++
		}
		return "", nil
	case "quad":
		return "  ", nil
	case "qquad":
		return "    ", nil
	case "text", "textrm", "mathrm", "mbox", "operatorname":
		return p.parseArg()
	}

	if styleMap, ok := Styles[name]; ok {
		arg, err := p.parseArg()
		if err != nil {
			return "", err
		}
		return applyStyle(styleMap, arg), nil
	}
	if sym, ok := Symbols[name]; ok {
		return sym, nil
	}

	// 未知命令：原样输出，不中断
	return "\\" + name, nil
}

// parseEnvironment 消费 \begin{name}...\end{name}
func (p *parser) parseEnvironment() (string, error) {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return "\\begin", nil
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '}' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("%w: missing environment name", ErrUnterminatedEnvironment)
	}
	name := string(p.src[start:p.pos])
	p.pos++ // '}'

	endMarker := `\end{` + name + `}`
	rest := string(p.src[p.pos:])
	idx := strings.Index(rest, endMarker)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnterminatedEnvironment, name)
	}
	body := rest[:idx]
	p.pos += len([]rune(body)) + len(endMarker)

	inner, err := Convert(body)
	if err != nil {
		return "", err
	}
	// & 是列分隔符，\\ 在转义表里已变成换行
	return strings.ReplaceAll(strings.TrimSpace(inner), "&", "  "), nil
}

// makeFraction 生成分数表示
func makeFraction(num, den string) string {
	if v, ok := vulgarFractions[num+"/"+den]; ok {
		return v
	}
	if len([]rune(num)) > 1 {
		num = "(" + num + ")"
	}
	if len([]rune(den)) > 1 {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

// makeSqrt 生成根号表示
func makeSqrt(index, radicand string) string {
	var radix string
	switch index {
	case "", "2":
		radix = "√"
	case "3":
		radix = "∛"
	case "4":
		radix = "∜"
	default:
		if sup := trySuperscript(index); sup != "" {
			radix = sup + "√"
		} else {
			radix = "(" + index + ")√"
		}
	}
	if len([]rune(radicand)) > 1 {
		return radix + "(" + radicand + ")"
	}
	return radix + radicand
}

// makeNot 生成否定关系符
func makeNot(negated string) string {
	trimmed := strings.TrimSpace(negated)
	if trimmed == "" {
		return ""
	}
	if v, ok := NotMap[trimmed]; ok {
		return v
	}
	runes := []rune(trimmed)
	return string(runes[0]) + "̸" + string(runes[1:])
}

// trySuperscript 尝试整体转上标，任一字符失败返回空串
func trySuperscript(text string) string {
	var b strings.Builder
	for _, r := range text {
		sup, ok := Superscripts[r]
		if !ok {
			return ""
		}
		b.WriteRune(sup)
	}
	return b.String()
}

// makeSuperscript 生成上标表示
func makeSuperscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if sup := trySuperscript(text); sup != "" {
		return sup
	}
	if len([]rune(text)) == 1 {
		return "^" + text
	}
	return "^(" + text + ")"
}

// makeSubscript 生成下标表示
func makeSubscript(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range text {
		sub, ok := Subscripts[r]
		if !ok {
			if len([]rune(text)) == 1 {
				return "_" + text
			}
			return "_(" + text + ")"
		}
		b.WriteRune(sub)
	}
	return b.String()
}

// applyStyle 按字符映射翻译样式，nil 映射原样返回
func applyStyle(styleMap map[rune]rune, text string) string {
	if styleMap == nil {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if styled, ok := styleMap[r]; ok {
			b.WriteRune(styled)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
