package calculator

import "unicode/utf8"

// keyboardAliases maps keys found on a keyboard to the keypad token they stand for.
var keyboardAliases = map[string]string{
	"*":    TokenTimes,
	"/":    TokenDivide,
	"^":    TokenPower,
	"sqrt": TokenSqrt,
	"pi":   TokenPi,
	"!":    TokenFactorial,
	"=":    TokenEnter,
}

// maxTokenLen is the byte length of the longest vocabulary entry or alias.
var maxTokenLen = func() int {
	n := 0
	for text := range vocabulary {
		n = max(n, len(text))
	}
	for alias := range keyboardAliases {
		n = max(n, len(alias))
	}
	return n
}()

// Tokenize splits typed text into keypad tokens, for front-ends that read a
// keyboard instead of buttons. At each position the longest vocabulary entry
// or keyboard alias wins, then a run of digits; any other rune becomes a
// token of its own and will be ignored by Input. Whitespace separates tokens.
// Aliases are returned as the keypad token they stand for.
//
//	Tokenize("3.5*sin30)") // ["3" "." "5" "×" "sin" "30" ")"]
func Tokenize(s string) []string {
	var tokens []string
	for i := 0; i < len(s); {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}

		if tok, n := longestVocabularyMatch(s[i:]); n > 0 {
			tokens = append(tokens, tok)
			i += n
			continue
		}

		if isDigit(c) {
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
			continue
		}

		_, w := utf8.DecodeRuneInString(s[i:])
		tokens = append(tokens, s[i:i+w])
		i += w
	}
	return tokens
}

func longestVocabularyMatch(s string) (string, int) {
	for n := min(maxTokenLen, len(s)); n > 0; n-- {
		if _, ok := vocabulary[s[:n]]; ok {
			return s[:n], n
		}
		if tok, ok := keyboardAliases[s[:n]]; ok {
			return tok, n
		}
	}
	return "", 0
}
