//go:build wasip1

// Command goscicalc-wasm-wasi is the WASI (wasip1) entrypoint for use from any
// language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "expression": "2^3^2" }  or  { "tokens": ["2", "sin", "30", ")"] }
//	stdout: { "result": "512", "expression": "2^3^2" }   on success
//	        { "error":  "<message>", "code": "S0201" }  on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o goscicalc.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"expression":"sin(30)"}' | wasmtime goscicalc.wasm
//
// Usage from Go: see package pkg/wasmhost.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sandrolain/goscicalc/pkg/protocol"
)

func writeResponse(r protocol.Response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req protocol.Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(protocol.Response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	resp := protocol.Handle(context.Background(), req)
	if !resp.OK() {
		writeResponse(resp, 1)
	}

	writeResponse(resp, 0)
}
