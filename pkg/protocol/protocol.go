// Package protocol defines the JSON request/response pair exchanged with the
// WebAssembly builds of the engine and the CLI's -json mode.
//
//	request:  { "expression": "2^10" }
//	          { "tokens": ["5", "+/-", "×", "2"] }
//	response: { "result": "-10", "expression": "(-1)*(5)*2" }
//	          { "error": "S0202 at position 3: Expected ) but got (eof)", "expression": "(1+" }
package protocol

import (
	"context"
	"errors"

	"github.com/sandrolain/goscicalc/pkg/calculator"
	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/types"
)

// Request asks for one evaluation. When Tokens is non-empty they are fed to
// a fresh builder and its buffer is evaluated; Expression is then ignored.
type Request struct {
	Expression string   `json:"expression,omitempty"`
	Tokens     []string `json:"tokens,omitempty"`
}

// Response carries the display text of the result or the error message.
// Expression echoes what was evaluated, which for token requests is the
// buffer the builder produced.
type Response struct {
	Result     string          `json:"result,omitempty"`
	Expression string          `json:"expression,omitempty"`
	Error      string          `json:"error,omitempty"`
	Code       types.ErrorCode `json:"code,omitempty"`
}

// OK reports whether the response carries a result.
func (r Response) OK() bool {
	return r.Error == ""
}

// Handler answers requests with one shared evaluator, so its expression
// cache, if any, spans requests. It is safe for concurrent use.
type Handler struct {
	ev *evaluator.Evaluator
}

// NewHandler creates a Handler whose evaluator is built from opts.
func NewHandler(opts ...evaluator.EvalOption) *Handler {
	return &Handler{ev: evaluator.New(opts...)}
}

// Evaluator returns the evaluator serving the requests.
func (h *Handler) Evaluator() *evaluator.Evaluator {
	return h.ev
}

// Handle executes req.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	if len(req.Tokens) > 0 {
		b := calculator.New(calculator.WithEngine(h.ev))
		for _, tok := range req.Tokens {
			b.Input(tok)
		}
		expression := b.Expression()
		result, err := b.EvaluateContext(ctx)
		return respond(expression, result, err)
	}

	result, err := h.ev.Calculate(ctx, req.Expression)
	return respond(req.Expression, result, err)
}

// Handle executes a single req with an evaluator built from opts.
func Handle(ctx context.Context, req Request, opts ...evaluator.EvalOption) Response {
	return NewHandler(opts...).Handle(ctx, req)
}

func respond(expression, result string, err error) Response {
	if err == nil {
		return Response{Result: result, Expression: expression}
	}
	resp := Response{Expression: expression, Error: err.Error()}
	var te *types.Error
	if errors.As(err, &te) {
		resp.Code = te.Code
	}
	return resp
}
