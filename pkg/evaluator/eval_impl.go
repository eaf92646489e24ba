package evaluator

import (
	"context"
	"fmt"
	"math"

	"github.com/sandrolain/goscicalc/pkg/types"
)

// evalNode reduces a single AST node to its value.
func (e *Evaluator) evalNode(ctx context.Context, node *types.ASTNode) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	if node == nil {
		return 0, fmt.Errorf("invalid expression: nil node")
	}

	if e.opts.Debug {
		e.logger.Debug("evaluating node",
			"type", node.Type,
			"value", node.Value,
			"position", node.Position)
	}

	switch node.Type {
	case types.NodeNumber, types.NodeConstant:
		return node.NumValue, nil
	case types.NodeGroup:
		return e.evalNode(ctx, node.LHS)
	case types.NodeUnary:
		return e.evalUnary(ctx, node)
	case types.NodeBinary:
		return e.evalBinary(ctx, node)
	case types.NodePostfix:
		return e.evalPostfix(ctx, node)
	case types.NodeFunction:
		return e.evalFunction(ctx, node)
	default:
		return 0, types.NewError(types.ErrInvalidToken, fmt.Sprintf("unknown node type %q", node.Type), node.Position)
	}
}

func (e *Evaluator) evalUnary(ctx context.Context, node *types.ASTNode) (float64, error) {
	v, err := e.evalNode(ctx, node.LHS)
	if err != nil {
		return 0, err
	}
	if node.Value == "-" {
		return -v, nil
	}
	return v, nil
}

func (e *Evaluator) evalBinary(ctx context.Context, node *types.ASTNode) (float64, error) {
	lhs, err := e.evalNode(ctx, node.LHS)
	if err != nil {
		return 0, err
	}
	rhs, err := e.evalNode(ctx, node.RHS)
	if err != nil {
		return 0, err
	}

	switch node.Value {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		return lhs / rhs, nil
	case "%":
		return math.Mod(lhs, rhs), nil
	case "^":
		return math.Pow(lhs, rhs), nil
	default:
		return 0, types.NewError(types.ErrInvalidToken, fmt.Sprintf("unknown operator %q", node.Value), node.Position)
	}
}

func (e *Evaluator) evalPostfix(ctx context.Context, node *types.ASTNode) (float64, error) {
	v, err := e.evalNode(ctx, node.LHS)
	if err != nil {
		return 0, err
	}
	result, err := Factorial(v)
	if err != nil {
		if te, ok := err.(*types.Error); ok {
			te.Position = node.Position
			te.Token = node.Value
		}
		return 0, err
	}
	return result, nil
}

func (e *Evaluator) evalFunction(ctx context.Context, node *types.ASTNode) (float64, error) {
	fn, ok := e.lookupFunction(node.Value)
	if !ok {
		return 0, types.NewError(types.ErrUnknownFunction, fmt.Sprintf("Unknown function: %s", node.Value), node.Position).WithToken(node.Value)
	}

	arg, err := e.evalNode(ctx, node.LHS)
	if err != nil {
		return 0, err
	}

	result, err := fn.Impl(ctx, arg)
	if err != nil {
		return 0, fmt.Errorf("%s(%v): %w", fn.Name, arg, err)
	}
	return result, nil
}
