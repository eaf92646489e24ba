//go:build js && wasm

// Command goscicalc-wasm-js is the WebAssembly entrypoint for browser and Node.js.
//
// It exposes a global `goscicalc` object with the following API:
//
//	goscicalc.version()          → string
//	goscicalc.eval(expression)   → string  (throws on error)
//	goscicalc.calculator()       → { input(token), evaluate(), expression(), display(), clear(), deleteOne() }
//
// calculator().evaluate() does not throw: like a keypad display it returns
// "Error" and clears the expression.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o goscicalc.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	require('./wasm_exec.js')
//	const go = new Go()
//	const { instance } = await WebAssembly.instantiate(fs.readFileSync('goscicalc.wasm'), go.importObject)
//	go.run(instance)
//	const calc = goscicalc.calculator()
//	calc.input('8'); calc.input('1/x')
//	console.log(calc.expression()) // '1/(8)'
//	console.log(calc.evaluate())   // '0.125'
package main

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/goscicalc"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

// jsEval implements goscicalc.eval(expression) → result.
func jsEval(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("goscicalc.eval requires 1 argument: expression (string)")
	}

	result, err := goscicalc.EvalWithContext(context.Background(), args[0].String())
	if err != nil {
		jsThrow(fmt.Sprintf("goscicalc.eval: %v", err))
	}
	return result
}

// jsCalculator implements goscicalc.calculator() → keypad object.
func jsCalculator(_ js.Value, _ []js.Value) interface{} {
	calc := goscicalc.NewCalculator()

	api := map[string]interface{}{
		"input": js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
			if len(args) < 1 {
				jsThrow("calculator.input requires 1 argument: token (string)")
			}
			calc.Input(args[0].String())
			return calc.Display()
		}),
		"evaluate": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			result, _ := calc.Evaluate()
			return result
		}),
		"expression": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return calc.Expression()
		}),
		"display": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return calc.Display()
		}),
		"clear": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			calc.Clear()
			return nil
		}),
		"deleteOne": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			calc.DeleteOne()
			return calc.Display()
		}),
	}
	return js.ValueOf(api)
}

func main() {
	api := map[string]interface{}{
		"eval":       js.FuncOf(jsEval),
		"calculator": js.FuncOf(jsCalculator),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return goscicalc.Version()
		}),
	}
	js.Global().Set("goscicalc", js.ValueOf(api))

	// Block forever; the JS event loop owns execution from here.
	select {}
}
