// Package types defines the core type system for goscicalc.
//
// This package contains type definitions for:
//   - Expression: Compiled calculator expressions
//   - ASTNode: Abstract Syntax Tree nodes
//   - Error types: Structured errors with codes
package types

// Expression represents a compiled calculator expression.
//
// An Expression can be evaluated multiple times by passing it to
// [evaluator.Evaluator.Eval]. It is safe for concurrent use by multiple
// goroutines.
type Expression struct {
	ast    *ASTNode
	source string
	arena  *NodeArena
}

// NewExpressionWithArena creates an Expression that keeps the arena backing
// its AST nodes alive.
func NewExpressionWithArena(ast *ASTNode, source string, arena *NodeArena) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
		arena:  arena,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the whitespace-stripped source of the expression.
func (e *Expression) Source() string {
	return e.source
}

// NodeCount returns the number of AST nodes, or 0 when the expression was
// built without an arena.
func (e *Expression) NodeCount() int {
	if e.arena == nil {
		return 0
	}
	return e.arena.Len()
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
