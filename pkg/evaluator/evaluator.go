// Package evaluator implements the calculator evaluation engine.
//
// The evaluator receives a compiled expression from the parser and reduces
// its AST to a float64. It supports:
//   - Arithmetic with native float64 semantics (division by zero yields ±Inf or NaN)
//   - Degree-based trigonometry, logarithms, square root and absolute value
//   - Factorials of non-negative integers
//   - User-registered single-argument functions
//   - Optional caching of compiled expressions
//
// # Example
//
//	ev := evaluator.New()
//	display, err := ev.Calculate(ctx, "2^3^2")
//	// display == "512"
//
// An Evaluator holds no per-evaluation state and is safe for concurrent use.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sandrolain/goscicalc/pkg/cache"
	"github.com/sandrolain/goscicalc/pkg/functions"
	"github.com/sandrolain/goscicalc/pkg/parser"
	"github.com/sandrolain/goscicalc/pkg/types"
)

// Evaluator evaluates calculator expressions.
type Evaluator struct {
	opts      EvalOptions
	logger    *slog.Logger
	cache     *cache.Cache            // non-nil when Caching is enabled
	customFns map[string]*FunctionDef // user-registered custom functions
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching.
	// The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly enabled.
	Cache *cache.Cache
	// MaxDepth limits parser recursion for expressions compiled by this evaluator.
	MaxDepth int
	// Debug enables debug logging of every visited node.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
	// CustomFunctions holds user-defined functions to register with the evaluator.
	CustomFunctions []functions.CustomFunctionDef
}

// defaultCaching is the Caching default for new evaluators. It is overridden
// per platform in evaluator_wasm.go.
var defaultCaching = false

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Caching:  defaultCaching,
		MaxDepth: parser.DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		c = cache.New(options.CacheSize)
	}

	customFns := make(map[string]*FunctionDef, len(options.CustomFunctions))
	for _, cfd := range options.CustomFunctions {
		customFns[cfd.Name] = &FunctionDef{
			Name: cfd.Name,
			Impl: FunctionImpl(cfd.Fn),
		}
	}

	return &Evaluator{
		opts:      options,
		logger:    options.Logger,
		cache:     c,
		customFns: customFns,
	}
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// lookupFunction resolves a function name. Custom functions shadow built-ins.
func (e *Evaluator) lookupFunction(name string) (*FunctionDef, bool) {
	if fn, ok := e.customFns[name]; ok {
		return fn, true
	}
	return GetFunction(name)
}

// Compile parses query, going through the cache when one is configured.
func (e *Evaluator) Compile(query string) (*types.Expression, error) {
	compile := func() (*types.Expression, error) {
		return parser.Compile(query, parser.WithMaxDepth(e.opts.MaxDepth))
	}
	if e.cache == nil {
		return compile()
	}
	return e.cache.GetOrCompile(query, compile)
}

// Eval evaluates a compiled expression.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (float64, error) {
	if expr == nil || expr.AST() == nil {
		return 0, fmt.Errorf("invalid expression")
	}
	return e.evalNode(ctx, expr.AST())
}

// EvalString compiles and evaluates query.
func (e *Evaluator) EvalString(ctx context.Context, query string) (float64, error) {
	expr, err := e.Compile(query)
	if err != nil {
		return 0, err
	}
	return e.Eval(ctx, expr)
}

// Calculate evaluates query and formats the result for display.
//
// Blank input yields "0" without invoking the parser. On failure, including
// a non-finite result, the returned text is "Error" and err is a *types.Error.
func (e *Evaluator) Calculate(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "0", nil
	}

	v, err := e.EvalString(ctx, query)
	if err != nil {
		e.logger.Debug("evaluation failed", "expression", query, "error", err)
		return ErrorDisplay, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		err := types.NewError(types.ErrNonFinite, fmt.Sprintf("result is %v", v), -1)
		e.logger.Debug("evaluation failed", "expression", query, "error", err)
		return ErrorDisplay, err
	}
	return FormatNumber(v), nil
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
// When enabled, a default LRU cache of 256 entries is created.
// To control the cache size use WithCacheSize; to supply your own cache use WithCache.
func WithCaching(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
// The evaluator will use this cache regardless of the Caching flag.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// WithMaxDepth sets the parser recursion limit; see parser.DefaultMaxDepth.
func WithMaxDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxDepth = depth
	}
}

// WithCustomFunction registers a user-defined single-argument function.
//
// Example:
//
//	ev := evaluator.New(evaluator.WithCustomFunction("cube", func(ctx context.Context, x float64) (float64, error) {
//	    return x * x * x, nil
//	}))
func WithCustomFunction(name string, fn functions.CustomFunc) EvalOption {
	return func(opts *EvalOptions) {
		opts.CustomFunctions = append(opts.CustomFunctions, functions.CustomFunctionDef{
			Name: name,
			Fn:   fn,
		})
	}
}

// WithFunctions registers several user-defined functions at once.
// Later registrations with the same name win.
func WithFunctions(defs ...functions.CustomFunctionDef) EvalOption {
	return func(opts *EvalOptions) {
		opts.CustomFunctions = append(opts.CustomFunctions, defs...)
	}
}
