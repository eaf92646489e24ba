// Package wasmhost runs the WASI build of goscicalc (cmd/wasm/wasi) inside an
// embedded wazero runtime.
//
// The module is compiled once by New. Every Eval instantiates a fresh,
// anonymous module instance with the JSON request on stdin and decodes the
// JSON response from stdout, so evaluations never share guest memory.
//
//	wasm, _ := os.ReadFile("goscicalc.wasm")
//	runner, err := wasmhost.New(ctx, wasm, wasmhost.WithTimeout(time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer runner.Close(ctx)
//	resp, err := runner.Eval(ctx, protocol.Request{Expression: "2^10"})
package wasmhost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/sandrolain/goscicalc/pkg/protocol"
)

// DefaultTimeout bounds a single guest execution.
const DefaultTimeout = 5 * time.Second

// Options configures a Runner.
type Options struct {
	// Timeout bounds each Eval. Zero or negative disables the bound.
	Timeout time.Duration
	// Logger for structured logging.
	Logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Options)

// WithTimeout sets the per-evaluation timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// Runner executes requests against a compiled goscicalc WASI module.
// It is safe for concurrent use.
type Runner struct {
	opts     Options
	logger   *slog.Logger
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// New compiles wasm and prepares a runtime with WASI preview 1 imports.
func New(ctx context.Context, wasm []byte, opts ...Option) (*Runner, error) {
	options := Options{
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate WASI: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to compile module: %w", err)
	}

	return &Runner{
		opts:     options,
		logger:   options.Logger,
		runtime:  rt,
		compiled: compiled,
	}, nil
}

// Eval runs one request in a fresh module instance.
//
// A response carrying an evaluation error is returned with a nil error; the
// error return is reserved for host-side and guest runtime failures.
func (r *Runner) Eval(ctx context.Context, req protocol.Request) (*protocol.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	config := wazero.NewModuleConfig().
		WithName("").
		WithArgs("goscicalc").
		WithStdin(bytes.NewReader(payload)).
		WithStdout(&stdout).
		WithStderr(&stderr)

	start := time.Now()
	mod, err := r.runtime.InstantiateModule(ctx, r.compiled, config)
	if mod != nil {
		defer mod.Close(ctx)
	}
	if err != nil {
		var exitErr *sys.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("guest execution failed: %w", err)
		}
		// Exit code 1 is the guest reporting an evaluation error on stdout.
		if code := exitErr.ExitCode(); code != 0 && code != 1 {
			r.logger.Debug("guest exited abnormally", "exit_code", code, "stderr", stderr.String())
			return nil, fmt.Errorf("guest exited with code %d: %s", code, stderr.String())
		}
	}

	var resp protocol.Response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode guest response: %w", err)
	}

	r.logger.Debug("guest evaluation finished",
		"expression", resp.Expression,
		"ok", resp.OK(),
		"duration", time.Since(start))

	return &resp, nil
}

// Close releases the runtime and every module compiled in it.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}
