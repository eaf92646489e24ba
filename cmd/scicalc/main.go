// Command scicalc is a terminal front-end for the goscicalc engine.
//
// Each input line is split into keypad tokens and fed to a calculator;
// "=" or "Enter" evaluates. Without an evaluation the current expression is
// printed after every line.
//
// Usage:
//
//	scicalc                       interactive session on stdin
//	scicalc -e '2^3^2'            evaluate one expression and exit
//	scicalc -e 'asin(0.5)'        extension functions are available to typed expressions
//	scicalc -json < requests      one JSON request per line, one JSON response per line
//
// Example session:
//
//	> 5 +/- × 2
//	(-1)*(5)*2
//	> =
//	-10
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/sandrolain/goscicalc"
	"github.com/sandrolain/goscicalc/pkg/calculator"
	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/ext"
	"github.com/sandrolain/goscicalc/pkg/protocol"
)

func main() {
	expr := flag.String("e", "", "Evaluate a single expression and exit")
	jsonMode := flag.Bool("json", false, "Read JSON requests from stdin, one per line")
	verbose := flag.Bool("v", false, "Log debug information to stderr")
	caching := flag.Bool("cache", true, "Cache compiled expressions")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(goscicalc.Version())
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := evalOptions(logger, *caching)

	ctx := context.Background()
	var err error
	switch {
	case *expr != "":
		err = evalOnce(ctx, os.Stdout, *expr, opts)
	case *jsonMode:
		err = serveJSON(ctx, os.Stdin, os.Stdout, opts)
	default:
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		err = repl(ctx, os.Stdin, os.Stdout, interactive, logger, opts)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "scicalc:", err)
		os.Exit(1)
	}
}

// evalOptions configures every evaluator the command creates. Typed
// expressions may use the extension functions.
func evalOptions(logger *slog.Logger, caching bool) []evaluator.EvalOption {
	return []evaluator.EvalOption{
		evaluator.WithLogger(logger),
		evaluator.WithCaching(caching),
		ext.WithAll(),
	}
}

func evalOnce(ctx context.Context, w io.Writer, expr string, opts []evaluator.EvalOption) error {
	result, err := evaluator.New(opts...).Calculate(ctx, expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

func serveJSON(ctx context.Context, r io.Reader, w io.Writer, opts []evaluator.EvalOption) error {
	handler := protocol.NewHandler(opts...)
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(w)
	for {
		var req protocol.Request
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("invalid request JSON: %w", err)
		}
		if err := enc.Encode(handler.Handle(ctx, req)); err != nil {
			return err
		}
	}
}

func repl(ctx context.Context, r io.Reader, w io.Writer, interactive bool, logger *slog.Logger, opts []evaluator.EvalOption) error {
	calc := calculator.New(
		calculator.WithEngine(evaluator.New(opts...)),
		calculator.WithLogger(logger),
	)

	scanner := bufio.NewScanner(r)
	prompt := func() {
		if interactive {
			fmt.Fprint(w, "> ")
		}
	}

	prompt()
	for scanner.Scan() {
		printed := false
		for _, text := range calculator.Tokenize(scanner.Text()) {
			tok, ok := calculator.Lookup(text)
			if ok && tok.Kind == calculator.KindEnter {
				result, err := calc.EvaluateContext(ctx)
				if err != nil {
					logger.Debug("evaluation failed", "error", err)
				}
				fmt.Fprintln(w, result)
				printed = true
				continue
			}
			calc.Input(text)
			printed = false
		}
		if !printed {
			fmt.Fprintln(w, calc.Display())
		}
		prompt()
	}
	return scanner.Err()
}
