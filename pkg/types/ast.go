package types

import (
	"math"
	"strconv"
	"strings"
)

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types.
const (
	NodeNumber   NodeType = "number"   // 3.14
	NodeConstant NodeType = "constant" // pi, e
	NodeUnary    NodeType = "unary"    // -x, +x
	NodeBinary   NodeType = "binary"   // + - * / % ^
	NodePostfix  NodeType = "postfix"  // x!
	NodeFunction NodeType = "function" // sin(x)
	NodeGroup    NodeType = "group"    // (x)
)

// Constants maps every named constant the grammar understands to its value.
// A constant name always wins over a function call with the same spelling.
var Constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// ASTNode represents a node in the Abstract Syntax Tree.
type ASTNode struct {
	Type     NodeType
	Value    string  // Operator, constant or function name
	NumValue float64 // Set for NodeNumber and NodeConstant
	Position int

	LHS *ASTNode // Operand of unary/postfix/function/group nodes, left side of binary nodes
	RHS *ASTNode // Right side of binary nodes
}

// arenaChunkSize is the number of ASTNode values pre-allocated per arena chunk.
// Keypad expressions rarely exceed a few dozen nodes.
const arenaChunkSize = 32

// NodeArena is a bump-pointer allocator for ASTNode values.
//
// The arena MUST stay alive as long as any pointer returned by Alloc is
// reachable. Attaching the arena to the [Expression] achieves this.
//
// NodeArena is NOT thread-safe. Each parser owns its own arena.
type NodeArena struct {
	chunks [][]ASTNode
	pos    int // next free index in the last chunk
}

// NewNodeArena allocates an arena pre-warmed with one initial chunk.
func NewNodeArena() *NodeArena {
	return &NodeArena{
		chunks: [][]ASTNode{make([]ASTNode, arenaChunkSize)},
	}
}

// Alloc returns a pointer to a zero-valued ASTNode inside the arena,
// with Type and Position set.
func (a *NodeArena) Alloc(nodeType NodeType, position int) *ASTNode {
	if a.pos >= arenaChunkSize {
		a.chunks = append(a.chunks, make([]ASTNode, arenaChunkSize))
		a.pos = 0
	}
	n := &a.chunks[len(a.chunks)-1][a.pos]
	a.pos++
	n.Type = nodeType
	n.Position = position
	return n
}

// Len returns the number of nodes handed out so far.
func (a *NodeArena) Len() int {
	return (len(a.chunks)-1)*arenaChunkSize + a.pos
}

// String renders the node as a fully parenthesized expression.
func (n *ASTNode) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *ASTNode) write(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type {
	case NodeNumber:
		sb.WriteString(strconv.FormatFloat(n.NumValue, 'g', -1, 64))
	case NodeConstant:
		sb.WriteString(n.Value)
	case NodeUnary:
		sb.WriteString("(")
		sb.WriteString(n.Value)
		n.LHS.write(sb)
		sb.WriteString(")")
	case NodeBinary:
		sb.WriteString("(")
		n.LHS.write(sb)
		sb.WriteString(" ")
		sb.WriteString(n.Value)
		sb.WriteString(" ")
		n.RHS.write(sb)
		sb.WriteString(")")
	case NodePostfix:
		n.LHS.write(sb)
		sb.WriteString(n.Value)
	case NodeFunction:
		sb.WriteString(n.Value)
		sb.WriteString("(")
		n.LHS.write(sb)
		sb.WriteString(")")
	case NodeGroup:
		n.LHS.write(sb)
	}
}
