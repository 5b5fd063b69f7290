package mathext

import (
	"github.com/yuin/goldmark/ast"
)

// Inline represents inline math e.g. $...$
type Inline struct {
	ast.BaseInline
}

// Inline implements Inline.Inline.
func (n *Inline) Inline() {}

// Dump renders this inline math as debug
func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// KindInline is the kind for math inline
var KindInline = ast.NewNodeKind("MathInline")

// Kind returns KindInline
func (n *Inline) Kind() ast.NodeKind {
	return KindInline
}

// NewInline creates a new ast math inline node
func NewInline() *Inline {
	return &Inline{}
}

// Block represents display math e.g. $$...$$
type Block struct {
	Inline
}

// Block implements Block.
func (n *Block) Block() {}

// KindBlock is the kind for math display block
var KindBlock = ast.NewNodeKind("MathBlock")

// Kind returns KindBlock
func (n *Block) Kind() ast.NodeKind {
	return KindBlock
}

// NewBlock creates a new ast math display node
func NewBlock() *Block {
	return &Block{}
}
