package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a calculator error code.
type ErrorCode string

// Error codes. The leading letter groups them the same way throughout:
// S for syntax, U for unresolved names and D for numeric domain failures.
const (
	// S0xxx: Parser/Syntax errors
	ErrMalformedNumber ErrorCode = "S0102"
	ErrTooDeep         ErrorCode = "S0105"
	ErrTrailingInput   ErrorCode = "S0201"
	ErrExpectedToken   ErrorCode = "S0202"
	ErrInvalidToken    ErrorCode = "S0204"

	// U0xxx: Resolution errors
	ErrUnknownFunction ErrorCode = "U1002"

	// D0xxx: Evaluation errors
	ErrFactorialDomain ErrorCode = "D1001"
	ErrNonFinite       ErrorCode = "D3001"
)

// Error represents a structured calculator error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new calculator error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// IsCode reports whether err is, or wraps, an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
