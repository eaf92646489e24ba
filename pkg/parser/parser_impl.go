package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sandrolain/goscicalc/pkg/types"
)

// Parser implements a recursive descent parser for calculator expressions.
// A Parser is single-use: it owns its lexer, cursor and node arena.
type Parser struct {
	lexer   *Lexer
	current Token
	opts    CompileOptions
	arena   *types.NodeArena
	depth   int
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		lexer: NewLexer(input),
		opts:  options,
		arena: types.NewNodeArena(),
	}

	// Read the first token
	p.advance()

	return p
}

// Parse parses the entire expression and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.error(types.ErrTrailingInput, fmt.Sprintf("Unexpected token: %s", p.current.Value))
	}

	return types.NewExpressionWithArena(node, p.lexer.Input(), p.arena), nil
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// match advances past the current token when it has type tt.
func (p *Parser) match(tt TokenType) bool {
	if p.current.Type != tt {
		return false
	}
	p.advance()
	return true
}

// expect checks if the current token matches the expected type and advances.
func (p *Parser) expect(tt TokenType) error {
	if p.current.Type != tt {
		return p.error(types.ErrExpectedToken, fmt.Sprintf("Expected %s but got %s", tt.String(), p.current.Type.String()))
	}
	p.advance()
	return nil
}

// error creates a parser error positioned at the current token.
func (p *Parser) error(code types.ErrorCode, message string) *types.Error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: p.current.Position,
		Token:    p.current.Value,
	}
}

// enter records one level of recursion; leave must be deferred after a nil return.
func (p *Parser) enter() error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return p.error(types.ErrTooDeep, fmt.Sprintf("Expression nested deeper than %d levels", p.opts.MaxDepth))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseExpr parses additive expressions.
func (p *Parser) parseExpr() (*types.ASTNode, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}

	return left, nil
}

// parseTerm parses multiplicative expressions.
func (p *Parser) parseTerm() (*types.ASTNode, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenMult || p.current.Type == TokenDiv || p.current.Type == TokenMod {
		op := p.current
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}

	return left, nil
}

// parsePower parses exponentiation. The right operand recurses into
// parsePower, which makes "^" right-associative.
func (p *Parser) parsePower() (*types.ASTNode, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenPow {
		return base, nil
	}
	op := p.current
	p.advance()
	exponent, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return p.binary(op, base, exponent), nil
}

// parseUnary parses any number of leading sign operators.
func (p *Parser) parseUnary() (*types.ASTNode, error) {
	if p.current.Type != TokenPlus && p.current.Type != TokenMinus {
		return p.parsePostfix()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op := p.current
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	node := p.arena.Alloc(types.NodeUnary, op.Position)
	node.Value = op.Value
	node.LHS = operand
	return node, nil
}

// parsePostfix parses a primary followed by any number of factorials.
func (p *Parser) parsePostfix() (*types.ASTNode, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenBang {
		bang := p.arena.Alloc(types.NodePostfix, p.current.Position)
		bang.Value = p.current.Value
		bang.LHS = node
		node = bang
		p.advance()
	}

	return node, nil
}

// parsePrimary parses numbers, constants, function calls and groups.
func (p *Parser) parsePrimary() (*types.ASTNode, error) {
	token := p.current

	switch token.Type {
	case TokenParenOpen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenParenClose); err != nil {
			return nil, err
		}
		node := p.arena.Alloc(types.NodeGroup, token.Position)
		node.LHS = inner
		return node, nil

	case TokenName:
		return p.parseName()

	case TokenNumber:
		return p.parseNumber()

	case TokenError:
		return nil, p.lexer.Error()

	case TokenEOF:
		return nil, p.error(types.ErrInvalidToken, "Unexpected end of expression")

	default:
		return nil, p.error(types.ErrInvalidToken, fmt.Sprintf("Invalid token: %s", token.Value))
	}
}

// parseName parses a constant or a single-argument function call.
// Function names are resolved by the evaluator, not here.
func (p *Parser) parseName() (*types.ASTNode, error) {
	token := p.current
	p.advance()

	if value, ok := types.Constants[token.Value]; ok {
		node := p.arena.Alloc(types.NodeConstant, token.Position)
		node.Value = token.Value
		node.NumValue = value
		return node, nil
	}

	if !p.match(TokenParenOpen) {
		return nil, p.error(types.ErrExpectedToken, fmt.Sprintf("Expected ( after %s but got %s", token.Value, p.current.Type.String())).WithToken(token.Value)
	}

	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenParenClose); err != nil {
		return nil, err
	}

	node := p.arena.Alloc(types.NodeFunction, token.Position)
	node.Value = token.Value
	node.LHS = arg
	return node, nil
}

// parseNumber converts the current number token.
func (p *Parser) parseNumber() (*types.ASTNode, error) {
	token := p.current
	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, p.error(types.ErrMalformedNumber, fmt.Sprintf("Malformed number: %s", token.Value)).WithCause(err)
	}
	p.advance()

	node := p.arena.Alloc(types.NodeNumber, token.Position)
	node.Value = token.Value
	node.NumValue = value
	return node, nil
}

func (p *Parser) binary(op Token, left, right *types.ASTNode) *types.ASTNode {
	node := p.arena.Alloc(types.NodeBinary, op.Position)
	node.Value = op.Value
	node.LHS = left
	node.RHS = right
	return node
}
