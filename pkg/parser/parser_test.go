package parser_test

import (
	"strings"
	"testing"

	"github.com/sandrolain/goscicalc/pkg/parser"
	"github.com/sandrolain/goscicalc/pkg/types"
)

// Helper functions

func parseExpr(t *testing.T, input string) *types.ASTNode {
	t.Helper()
	expr, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}
	return expr.AST()
}

func expectError(t *testing.T, input string, code types.ErrorCode) *types.Error {
	t.Helper()
	_, err := parser.Parse(input)
	if err == nil {
		t.Fatalf("Expected error parsing %q but got none", input)
	}
	te, ok := err.(*types.Error)
	if !ok {
		t.Fatalf("Expected *types.Error for %q, got %T", input, err)
	}
	if te.Code != code {
		t.Fatalf("Expected code %s for %q, got %s (%v)", code, input, te.Code, err)
	}
	return te
}

func checkNode(t *testing.T, node *types.ASTNode, expectedType types.NodeType, expectedValue string) {
	t.Helper()
	if node == nil {
		t.Fatal("Node is nil")
	}
	if node.Type != expectedType {
		t.Errorf("Expected node type %s, got %s", expectedType, node.Type)
	}
	if node.Value != expectedValue {
		t.Errorf("Expected value %q, got %q", expectedValue, node.Value)
	}
}

// Literal tests

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		nodeType types.NodeType
		value    string
		num      float64
	}{
		{"integer", "42", types.NodeNumber, "42", 42},
		{"decimal", "3.14", types.NodeNumber, "3.14", 3.14},
		{"leading dot", ".5", types.NodeNumber, ".5", 0.5},
		{"trailing dot", "3.", types.NodeNumber, "3.", 3},
		{"pi", "pi", types.NodeConstant, "pi", 3.141592653589793},
		{"e", "e", types.NodeConstant, "e", 2.718281828459045},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExpr(t, tt.input)
			checkNode(t, node, tt.nodeType, tt.value)
			if node.NumValue != tt.num {
				t.Errorf("Expected numeric value %v, got %v", tt.num, node.NumValue)
			}
		})
	}
}

// Structure tests

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precedence", "1+2*3", "(1 + (2 * 3))"},
		{"left associative minus", "8-4-2", "((8 - 4) - 2)"},
		{"left associative division", "8/4/2", "((8 / 4) / 2)"},
		{"modulo binds like multiply", "1+7%4", "(1 + (7 % 4))"},
		{"right associative power", "2^3^2", "(2 ^ (3 ^ 2))"},
		{"power binds tighter than multiply", "2*3^2", "(2 * (3 ^ 2))"},
		{"unary minus binds tighter than power", "-2^2", "((-2) ^ 2)"},
		{"double unary", "--3", "(-(-3))"},
		{"unary plus", "+3", "(+3)"},
		{"factorial", "3!", "3!"},
		{"chained factorial", "3!!", "3!!"},
		{"factorial before power", "3!^2", "(3! ^ 2)"},
		{"function", "sin(30)", "sin(30)"},
		{"nested function", "sqrt(abs(-16))", "sqrt(abs((-16)))"},
		{"group", "(1+2)*3", "((1 + 2) * 3)"},
		{"sign toggle shape", "(-1)*(5)", "((-1) * 5)"},
		{"reciprocal shape", "1/(8)", "(1 / 8)"},
		{"whitespace ignored", " 2 * ( 3 + 4 ) ", "(2 * (3 + 4))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExpr(t, tt.input)
			if got := node.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseFunctionNode(t *testing.T) {
	node := parseExpr(t, "log(100)")
	checkNode(t, node, types.NodeFunction, "log")
	checkNode(t, node.LHS, types.NodeNumber, "100")
}

func TestParseUnknownFunctionIsDeferred(t *testing.T) {
	// Name resolution happens at evaluation time.
	node := parseExpr(t, "foo(1)")
	checkNode(t, node, types.NodeFunction, "foo")
}

// Error tests

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  types.ErrorCode
	}{
		{"empty", "", types.ErrInvalidToken},
		{"dangling operator", "1+", types.ErrInvalidToken},
		{"binary after open paren", "(*2)", types.ErrInvalidToken},
		{"unclosed group", "(1+2", types.ErrExpectedToken},
		{"unclosed call", "sin(30", types.ErrExpectedToken},
		{"unopened group", "1+2)", types.ErrTrailingInput},
		{"identifier without call", "foo", types.ErrExpectedToken},
		{"function without parens", "sin30", types.ErrExpectedToken},
		{"constant called", "pi(2)", types.ErrTrailingInput},
		{"implicit multiplication", "2pi", types.ErrTrailingInput},
		{"lone dot", ".", types.ErrMalformedNumber},
		{"bad character", "2$3", types.ErrTrailingInput},
		{"bad leading character", "$3", types.ErrInvalidToken},
		{"empty group", "()", types.ErrInvalidToken},
		{"unicode constant", "π", types.ErrExpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.input, tt.code)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	te := expectError(t, "1+2)", types.ErrTrailingInput)
	if te.Position != 3 {
		t.Errorf("Expected position 3, got %d", te.Position)
	}
	if te.Token != ")" {
		t.Errorf("Expected token ), got %q", te.Token)
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)

	if _, err := parser.Compile(deep); err != nil {
		t.Fatalf("default depth should accept %q: %v", deep, err)
	}

	_, err := parser.Compile(deep, parser.WithMaxDepth(5))
	if !types.IsCode(err, types.ErrTooDeep) {
		t.Fatalf("expected %s, got %v", types.ErrTooDeep, err)
	}

	_, err = parser.Compile(strings.Repeat("-", 50)+"1", parser.WithMaxDepth(10))
	if !types.IsCode(err, types.ErrTooDeep) {
		t.Fatalf("expected %s for unary chain, got %v", types.ErrTooDeep, err)
	}
}

func TestParseDefaultDepthCountsGroupsTwice(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	if _, err := parser.Parse(nested(249)); err != nil {
		t.Fatalf("249 nested groups should parse: %v", err)
	}
	_, err := parser.Parse(nested(250))
	if !types.IsCode(err, types.ErrTooDeep) {
		t.Fatalf("250 nested groups: expected %s, got %v", types.ErrTooDeep, err)
	}
}

func TestParseSourceIsStripped(t *testing.T) {
	expr, err := parser.Parse(" 1 + 2 ")
	if err != nil {
		t.Fatal(err)
	}
	if expr.Source() != "1+2" {
		t.Errorf("Expected source %q, got %q", "1+2", expr.Source())
	}
	if expr.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", expr.NodeCount())
	}
}

func TestParseLargeExpressionSpansArenaChunks(t *testing.T) {
	input := "1" + strings.Repeat("+1", 100)
	expr, err := parser.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if expr.NodeCount() != 201 {
		t.Errorf("Expected 201 nodes, got %d", expr.NodeCount())
	}
}
