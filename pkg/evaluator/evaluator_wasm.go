//go:build js && wasm

package evaluator

// init sets browser-specific defaults for all Evaluators created in this
// process.
//
// On js/wasm a page keeps one module alive and re-evaluates the same display
// buffer on every keypress preview, so compiled expressions are cached by
// default. The wasip1 build starts a fresh instance per request and gains
// nothing from a cache.
func init() {
	defaultCaching = true
}
