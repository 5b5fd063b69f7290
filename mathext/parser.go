package mathext

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/mathify-go/internal/delim"
)

// inlineParser 识别单行内的 $...$ 和 $$...$$
//
// 闭合定界符的定位复用 delim.FindClosing：\$ 转义和花括号组
// 与 HTML 扫描器遵循同一套规则。
type inlineParser struct{}

// NewInlineParser returns a new parser for $ delimited math.
func NewInlineParser() parser.InlineParser {
	return &inlineParser{}
}

func (p *inlineParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()

	opener := 1
	display := false
	if len(line) > 1 && line[1] == '$' {
		opener = 2
		display = true
	}
	if len(line) <= opener {
		return nil
	}

	end := delim.FindClosing(string(line), string(line[:opener]), opener)
	if end < 0 || end == opener {
		return nil
	}
	// $5 and $10 之类的金额不是公式：行内 $ 两侧不允许空白
	if !display && (util.IsSpace(line[opener]) || util.IsSpace(line[end-1])) {
		return nil
	}

	var node ast.Node
	if display {
		node = NewBlock()
	} else {
		node = NewInline()
	}
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(segment.Start+opener, segment.Start+end)))
	block.Advance(end + opener)
	return node
}
