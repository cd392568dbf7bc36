package eqsolve

import (
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an equation. Numbers and operators are
// leaves; groups hold an ordered list of children. After Parse, every group
// has either exactly one child or exactly three children in the form
// operand, operator, operand.
type Node struct {
	// Kind is the kind of node.
	Kind NodeKind
	// Op is the operator for NodeOp nodes.
	Op Op
	// Text is the literal text of a NodeNum, possibly with a leading minus
	// sign. Decimal separators are normalized to '.'.
	Text string
	// Pos is the column of the token that created the node. For groups made
	// from parentheses, it is the column of the open parenthesis.
	Pos int
	// Children are the contents of a NodeGroup.
	Children []*Node
}

// NodeKind is the kind of a syntax tree node.
type NodeKind int8

const (
	NodeNone NodeKind = iota
	// NodeNum is a number literal.
	NodeNum
	// NodeOp is a binary operator.
	NodeOp
	// NodeGroup is a parenthesized or precedence-resolved subexpression.
	NodeGroup
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Node
//go:generate go mod tidy

// Op is a binary arithmetic operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd     // a + b
	OpSub     // a - b
	OpMul     // a * b
	OpDiv     // a / b
	OpPow     // a ^ b
)

// Operators contains the runes which are scanned as operators.
const Operators = "+-*/^"

// opOf gets the operator for a rune, or OpNone if the rune is no operator.
func opOf(r rune) Op {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	default:
		return OpNone
	}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// num creates a number leaf.
func num(text string, pos int) *Node {
	return &Node{Kind: NodeNum, Text: text, Pos: pos}
}

// group creates a group node owning a fresh copy of kids.
func group(pos int, kids ...*Node) *Node {
	return &Node{Kind: NodeGroup, Pos: pos, Children: append([]*Node(nil), kids...)}
}

// String creates a string representation of the tree, with alternating round
// and square brackets around each group.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	switch n.Kind {
	case NodeNum:
		b.WriteString(n.Text)
	case NodeOp:
		b.WriteString(n.Op.String())
	case NodeGroup:
		var l, r byte = '(', ')'
		if square {
			l, r = '[', ']'
		}
		b.WriteByte(l)
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.fmt(b, !square)
		}
		b.WriteByte(r)
	default:
		// Invalid nodes use invalid characters.
		b.WriteString("$" + n.Kind.String() + "$")
	}
}
