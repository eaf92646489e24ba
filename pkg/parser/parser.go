package parser

// Package parser implements the recursive-descent parser for calculator
// expressions.
//
// # Grammar
//
// Precedence runs from low to high:
//
//	expr    := term (('+'|'-') term)*
//	term    := power (('*'|'/'|'%') power)*
//	power   := unary ('^' power)?          right-associative
//	unary   := ('+'|'-') unary | postfix
//	postfix := primary ('!')*
//	primary := number | constant | name '(' expr ')' | '(' expr ')'
//
// Whitespace is insignificant and removed before scanning.
//
// # Example
//
//	expr, err := parser.Parse("2*sin(30)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(expr.AST())

import (
	"github.com/sandrolain/goscicalc/pkg/types"
)

// DefaultMaxDepth bounds parser recursion. A parenthesized group or function
// call costs two levels, a unary sign or a "^" one level, so the default
// accepts 249 nested groups.
const DefaultMaxDepth = 500

// Parse parses a calculator expression and returns the compiled Expression.
//
// If parsing fails, it returns a *types.Error with position information.
func Parse(query string) (*types.Expression, error) {
	p := NewParser(query)
	return p.Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(query string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(query, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits recursion depth, counted as described for DefaultMaxDepth.
	// Zero or negative disables the limit.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
