// Package calculator implements the expression builder behind a calculator keypad.
//
// A Builder owns a single text buffer. Each keypress is submitted as a token
// through Input; the token's editing rule appends to, rewrites or rejects
// the change so that the buffer stays a prefix of some valid expression.
// Evaluate hands the buffer to an evaluator and replaces it with the result,
// so the next keypress continues from the previous answer.
//
//	b := calculator.New()
//	for _, tok := range []string{"5", "+/-", "×", "2"} {
//	    b.Input(tok)
//	}
//	b.Expression() // "(-1)*(5)*2"
//	b.Evaluate()   // "-10", nil
package calculator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sandrolain/goscicalc/pkg/evaluator"
)

// Engine evaluates a complete expression to its display text.
// *evaluator.Evaluator implements Engine.
type Engine interface {
	Calculate(ctx context.Context, expression string) (string, error)
}

// Builder incrementally edits an expression buffer.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	buf    []byte
	engine Engine
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithEngine sets the engine used by Evaluate.
func WithEngine(engine Engine) Option {
	return func(b *Builder) {
		b.engine = engine
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates an empty Builder. Without WithEngine it evaluates with
// evaluator.New().
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.engine == nil {
		b.engine = evaluator.New(evaluator.WithLogger(b.logger))
	}
	return b
}

// Input submits one token. Blank and unknown tokens are ignored, as are
// tokens whose editing rule does not apply to the current buffer.
func (b *Builder) Input(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	tok, ok := Lookup(token)
	if !ok {
		b.logger.Debug("token ignored", "token", token, "reason", "unknown")
		return
	}
	b.apply(tok)
}

// Dispatch applies a token obtained from Lookup and reports whether the
// buffer accepted it. Tokens that Lookup would not return for tok.Text are
// rejected without touching the buffer.
func (b *Builder) Dispatch(tok Token) bool {
	resolved, ok := Lookup(tok.Text)
	if !ok || resolved != tok {
		b.logger.Debug("token ignored", "token", tok.Text, "kind", tok.Kind, "reason", "unresolved")
		return false
	}
	return b.apply(tok)
}

func (b *Builder) apply(tok Token) bool {
	if !rules[tok.Kind](b, tok) {
		b.logger.Debug("token ignored", "token", tok.Text, "kind", tok.Kind, "expression", string(b.buf))
		return false
	}
	return true
}

// Expression returns the current buffer content.
func (b *Builder) Expression() string {
	return string(b.buf)
}

// Display returns the buffer as a keypad display shows it: "0" when empty.
func (b *Builder) Display() string {
	if len(b.buf) == 0 {
		return "0"
	}
	return string(b.buf)
}

// Clear empties the buffer.
func (b *Builder) Clear() {
	b.buf = b.buf[:0]
}

// DeleteOne removes the last character, if any.
func (b *Builder) DeleteOne() {
	if len(b.buf) > 0 {
		b.buf = b.buf[:len(b.buf)-1]
	}
}

// Evaluate is EvaluateContext with a background context.
func (b *Builder) Evaluate() (string, error) {
	return b.EvaluateContext(context.Background())
}

// EvaluateContext evaluates the buffer.
//
// A blank buffer yields "0" and is left untouched. On success the buffer is
// replaced by the formatted result, which is also returned. On failure the
// buffer is cleared and "Error" is returned together with the error.
func (b *Builder) EvaluateContext(ctx context.Context) (string, error) {
	expression := strings.TrimSpace(string(b.buf))
	if expression == "" {
		return "0", nil
	}

	out, err := b.engine.Calculate(ctx, expression)
	if err != nil {
		b.logger.Debug("expression rejected", "expression", expression, "error", err)
		b.Clear()
		return evaluator.ErrorDisplay, err
	}

	b.buf = append(b.buf[:0], out...)
	return out, nil
}

func (b *Builder) last() byte {
	return b.buf[len(b.buf)-1]
}
