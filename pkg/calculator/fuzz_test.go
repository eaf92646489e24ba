package calculator_test

import (
	"strings"
	"testing"

	"github.com/sandrolain/goscicalc/pkg/calculator"
)

func FuzzBuilder(f *testing.F) {
	seeds := []string{
		"5+/-×2",
		"1/x",
		"3.1.4",
		"sin30)1/x",
		"((((",
		"π e n! x²",
		"1÷0",
		"DEL DEL Clear",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		b := calculator.New()
		for _, tok := range calculator.Tokenize(input) {
			b.Input(tok)
		}
		before := b.Expression()
		if strings.Contains(before, "..") {
			t.Fatalf("double dot in %q", before)
		}

		got, err := b.Evaluate()
		if err != nil {
			if got != "Error" || b.Expression() != "" {
				t.Fatalf("failed evaluation of %q left %q / %q", before, got, b.Expression())
			}
			return
		}
		if strings.TrimSpace(before) != "" && b.Expression() != got {
			t.Fatalf("buffer %q does not hold result %q", b.Expression(), got)
		}
	})
}
