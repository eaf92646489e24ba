package calculator

// Kind classifies a token by the editing rule it triggers.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDigits
	KindOperator
	KindFunction
	KindConstant
	KindParen
	KindDot
	KindPostfix
	KindReciprocal
	KindSign
	KindClear
	KindDelete
	KindEnter

	kindCount
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDigits:
		return "digits"
	case KindOperator:
		return "operator"
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	case KindParen:
		return "paren"
	case KindDot:
		return "dot"
	case KindPostfix:
		return "postfix"
	case KindReciprocal:
		return "reciprocal"
	case KindSign:
		return "sign"
	case KindClear:
		return "clear"
	case KindDelete:
		return "delete"
	case KindEnter:
		return "enter"
	default:
		return "(unknown)"
	}
}

// Token is one resolved input symbol.
type Token struct {
	Kind  Kind   // Editing rule
	Text  string // Text as submitted by the caller
	Value string // Text written into the expression buffer
}

// Keypad token spellings. Tokenize maps keyboard aliases onto these.
const (
	TokenTimes      = "×"
	TokenDivide     = "÷"
	TokenMinusSign  = "−"
	TokenPower      = "xʸ"
	TokenSquare     = "x²"
	TokenFactorial  = "n!"
	TokenSqrt       = "√"
	TokenPi         = "π"
	TokenReciprocal = "1/x"
	TokenToggleSign = "+/-"
	TokenClear      = "Clear"
	TokenDelete     = "DEL"
	TokenEnter      = "Enter"
)

// vocabulary maps every accepted token text, other than digit runs, to its token.
var vocabulary = buildVocabulary()

func buildVocabulary() map[string]Token {
	v := make(map[string]Token)
	define := func(kind Kind, value string, texts ...string) {
		for _, text := range texts {
			v[text] = Token{Kind: kind, Text: text, Value: value}
		}
	}

	define(KindOperator, "+", "+")
	define(KindOperator, "-", "-", TokenMinusSign)
	define(KindOperator, "*", TokenTimes)
	define(KindOperator, "/", TokenDivide)
	define(KindOperator, "%", "%")
	define(KindOperator, "^", TokenPower)

	for _, fn := range []string{"sin", "cos", "tan", "ln", "log", "abs"} {
		define(KindFunction, fn, fn)
	}
	define(KindFunction, "sqrt", TokenSqrt)

	define(KindConstant, "pi", TokenPi)
	define(KindConstant, "e", "e")

	define(KindParen, "(", "(")
	define(KindParen, ")", ")")
	define(KindDot, ".", ".")

	define(KindPostfix, "^2", TokenSquare)
	define(KindPostfix, "!", TokenFactorial)

	define(KindReciprocal, "1/(", TokenReciprocal)
	define(KindSign, "-", TokenToggleSign)

	define(KindClear, "", TokenClear)
	define(KindDelete, "", TokenDelete)
	define(KindEnter, "", TokenEnter)
	return v
}

// Lookup resolves token text. Runs of ASCII digits are always accepted;
// anything else must be part of the fixed vocabulary.
func Lookup(text string) (Token, bool) {
	if tok, ok := vocabulary[text]; ok {
		return tok, true
	}
	if isDigitRun(text) {
		return Token{Kind: KindDigits, Text: text, Value: text}, true
	}
	return Token{Kind: KindUnknown, Text: text}, false
}

// Vocabulary returns every fixed token text. Digit runs are not listed.
func Vocabulary() []string {
	texts := make([]string, 0, len(vocabulary))
	for text := range vocabulary {
		texts = append(texts, text)
	}
	return texts
}

func isDigitRun(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
