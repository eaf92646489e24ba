package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sandrolain/goscicalc/pkg/types"
)

const eof = -1

// Lexer converts a calculator expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// Whitespace is removed from the input before scanning, so "1 2" lexes as
// the single number 12. Token positions refer to the stripped input.
func NewLexer(input string) *Lexer {
	input = StripSpace(input)
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all subsequent calls.
func (l *Lexer) Next() Token {
	ch := l.nextRune()
	if ch == eof {
		return l.eof()
	}

	if tt := lookupSymbol1(ch); tt > 0 {
		return l.newToken(tt)
	}

	if isDigit(ch) || ch == '.' {
		l.backup()
		return l.scanNumber()
	}

	if unicode.IsLetter(ch) {
		l.backup()
		return l.scanName()
	}

	return l.error(types.ErrInvalidToken, fmt.Sprintf("Unexpected character %q", ch))
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// Input returns the whitespace-stripped input being scanned.
func (l *Lexer) Input() string {
	return l.input
}

// scanNumber reads a number literal from the current position.
// Format: [0-9]*(\.[0-9]*)? with at least one character. A lone "." is
// returned as a number token and rejected when the parser converts it.
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)
	if l.acceptRune('.') {
		l.acceptAll(isDigit)
	}
	return l.newToken(TokenNumber)
}

// scanName reads a run of letters. Digits end a name, so "pi2" is the
// constant pi followed by the number 2.
func (l *Lexer) scanName() Token {
	l.acceptAll(unicode.IsLetter)
	return l.newToken(TokenName)
}

// Helper methods

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) error(code types.ErrorCode, message string) Token {
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     code,
		Message:  message,
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
