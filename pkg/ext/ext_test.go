package ext_test

import (
	"testing"

	"github.com/sandrolain/goscicalc"
	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/ext"
	"github.com/sandrolain/goscicalc/pkg/ext/extnumeric"
	"github.com/sandrolain/goscicalc/pkg/ext/exttrig"
	"github.com/sandrolain/goscicalc/pkg/types"
)

func eval(t *testing.T, expr string, opts ...evaluator.EvalOption) string {
	t.Helper()
	result, err := goscicalc.Eval(expr, opts...)
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", expr, err)
	}
	return result
}

// ── WithAll ────────────────────────────────────────────────────────────────

func TestWithAll(t *testing.T) {
	opt := ext.WithAll()

	tests := []struct {
		expr string
		want string
	}{
		{"exp(0)", "1"},
		{"exp(1)", "2.7182818285"},
		{"cbrt(27)", "3"},
		{"cbrt(-8)", "-2"},
		{"sign(-4)", "-1"},
		{"sign(0)", "0"},
		{"trunc(-2.7)", "-2"},
		{"floor(-2.5)", "-3"},
		{"ceil(2.1)", "3"},
		{"round(2.5)", "3"},
		{"round(-2.5)", "-3"},
		{"asin(0.5)", "30"},
		{"acos(0)", "90"},
		{"atan(1)", "45"},
		{"sin(asin(0.5))", "0.5"},
		{"sinh(0)", "0"},
		{"cosh(0)", "1"},
		{"tanh(0)", "0"},
		{"asin(0.5)+cbrt(27)", "33"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := eval(t, tt.expr, opt); got != tt.want {
				t.Errorf("Eval(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestWithAllDomainErrors(t *testing.T) {
	for _, expr := range []string{"asin(2)", "acos(-1.5)", "exp(1000)"} {
		_, err := goscicalc.Eval(expr, ext.WithAll())
		if !types.IsCode(err, types.ErrNonFinite) {
			t.Errorf("Eval(%q): expected %s, got %v", expr, types.ErrNonFinite, err)
		}
	}
}

// ── By category ────────────────────────────────────────────────────────────

func TestCategoriesAreSeparate(t *testing.T) {
	if got := eval(t, "floor(2.7)", ext.WithNumeric()); got != "2" {
		t.Errorf("got %q, want 2", got)
	}
	if _, err := goscicalc.Eval("asin(1)", ext.WithNumeric()); !types.IsCode(err, types.ErrUnknownFunction) {
		t.Errorf("expected asin to be unknown with WithNumeric, got %v", err)
	}

	if got := eval(t, "asin(1)", ext.WithTrig()); got != "90" {
		t.Errorf("got %q, want 90", got)
	}
	if _, err := goscicalc.Eval("floor(1)", ext.WithTrig()); !types.IsCode(err, types.ErrUnknownFunction) {
		t.Errorf("expected floor to be unknown with WithTrig, got %v", err)
	}
}

func TestSingleFunction(t *testing.T) {
	got := eval(t, "cosh(0)+ceil(0.2)", evaluator.WithFunctions(exttrig.Cosh(), extnumeric.Ceil()))
	if got != "2" {
		t.Errorf("got %q, want 2", got)
	}
}

func TestNamesAreLettersOnly(t *testing.T) {
	for _, def := range ext.All() {
		for _, r := range def.Name {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				t.Errorf("function %q cannot be written in an expression", def.Name)
			}
		}
		if _, ok := types.Constants[def.Name]; ok {
			t.Errorf("function %q is shadowed by a constant", def.Name)
		}
	}
}
