package mathshell

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Nodes are
// immutable once parsed.
type node struct {
	kind nodeKind

	// name is the literal text for nodeNum, the lowercased variable name for
	// nodeVar, and the function name for nodeCall.
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal; name is the source text
	nodeVar // variable reference; evaluated against the session

	nodeCall // call the named function on left

	nodeNeg // negate left
	nodeNop // unary plus; evaluate left

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, mod by right
	nodePow // evaluate left, exp by right
)

var nodeKindNames = [...]string{
	"None", "Num", "Var", "Call", "Neg", "Nop",
	"Add", "Sub", "Mul", "Div", "Mod", "Pow",
}

func (k nodeKind) String() string {
	if 0 <= int(k) && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the subtree with alternating round and square grouping brackets.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('#')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('#')
	case nodeNum:
		b.WriteString(n.name)
	case nodeVar:
		b.WriteByte('$')
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binfmt(b, square, " + ")
	case nodeSub:
		n.binfmt(b, square, " - ")
	case nodeMul:
		n.binfmt(b, square, " * ")
	case nodeDiv:
		n.binfmt(b, square, " / ")
	case nodeMod:
		n.binfmt(b, square, " % ")
	case nodePow:
		n.binfmt(b, square, " ** ")
	default:
		panic("mathshell: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, square bool, op string) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
