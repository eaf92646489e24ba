package parser_test

import (
	"testing"

	"github.com/sandrolain/goscicalc/pkg/parser"
	"github.com/sandrolain/goscicalc/pkg/types"
)

type lexerTestCase struct {
	name      string
	input     string
	expected  []parser.Token
	expectErr bool
}

func runLexerTests(t *testing.T, tests []lexerTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := parser.NewLexer(tt.input)
			var got []parser.Token
			for {
				tok := l.Next()
				if tok.Type == parser.TokenEOF {
					break
				}
				got = append(got, tok)
				if tok.Type == parser.TokenError {
					break
				}
			}

			if tt.expectErr {
				if l.Error() == nil {
					t.Fatalf("expected lexer error for %q", tt.input)
				}
				return
			}
			if l.Error() != nil {
				t.Fatalf("unexpected lexer error: %v", l.Error())
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: expected %+v, got %+v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestLexerWhitespace(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "leading whitespace",
			input: "   42",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "42", Position: 0},
			},
		},
		{
			name:  "whitespace inside a number",
			input: "1 2",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "12", Position: 0},
			},
		},
		{
			name:  "mixed whitespace",
			input: " \t\n\r\vs i n",
			expected: []parser.Token{
				{Type: parser.TokenName, Value: "sin", Position: 0},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerNumbers(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "integer",
			input: "123",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "123", Position: 0},
			},
		},
		{
			name:  "decimal",
			input: "3.14",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "3.14", Position: 0},
			},
		},
		{
			name:  "leading dot",
			input: ".5",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: ".5", Position: 0},
			},
		},
		{
			name:  "trailing dot",
			input: "3.",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "3.", Position: 0},
			},
		},
		{
			name:  "second dot starts a new number",
			input: "1.2.3",
			expected: []parser.Token{
				{Type: parser.TokenNumber, Value: "1.2", Position: 0},
				{Type: parser.TokenNumber, Value: ".3", Position: 3},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerNamesAndSymbols(t *testing.T) {
	tests := []lexerTestCase{
		{
			name:  "function call",
			input: "sin(30)",
			expected: []parser.Token{
				{Type: parser.TokenName, Value: "sin", Position: 0},
				{Type: parser.TokenParenOpen, Value: "(", Position: 3},
				{Type: parser.TokenNumber, Value: "30", Position: 4},
				{Type: parser.TokenParenClose, Value: ")", Position: 6},
			},
		},
		{
			name:  "digits end a name",
			input: "pi2",
			expected: []parser.Token{
				{Type: parser.TokenName, Value: "pi", Position: 0},
				{Type: parser.TokenNumber, Value: "2", Position: 2},
			},
		},
		{
			name:  "all operators",
			input: "+-*/%^!",
			expected: []parser.Token{
				{Type: parser.TokenPlus, Value: "+", Position: 0},
				{Type: parser.TokenMinus, Value: "-", Position: 1},
				{Type: parser.TokenMult, Value: "*", Position: 2},
				{Type: parser.TokenDiv, Value: "/", Position: 3},
				{Type: parser.TokenMod, Value: "%", Position: 4},
				{Type: parser.TokenPow, Value: "^", Position: 5},
				{Type: parser.TokenBang, Value: "!", Position: 6},
			},
		},
	}

	runLexerTests(t, tests)
}

func TestLexerErrors(t *testing.T) {
	tests := []lexerTestCase{
		{name: "dollar", input: "1$", expectErr: true},
		{name: "comma", input: "1,5", expectErr: true},
		{name: "equals", input: "=", expectErr: true},
	}

	runLexerTests(t, tests)

	l := parser.NewLexer("#")
	l.Next()
	if !types.IsCode(l.Error(), types.ErrInvalidToken) {
		t.Fatalf("expected %s, got %v", types.ErrInvalidToken, l.Error())
	}
}

func TestStripSpace(t *testing.T) {
	if got := parser.StripSpace(" 1 +\t2\n"); got != "1+2" {
		t.Fatalf("expected %q, got %q", "1+2", got)
	}
}
