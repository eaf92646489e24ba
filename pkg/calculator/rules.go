package calculator

// rule applies one token to the buffer and reports whether the token was accepted.
type rule func(b *Builder, tok Token) bool

// rules is indexed by Kind.
var rules = [kindCount]rule{
	KindDigits:     (*Builder).appendValue,
	KindOperator:   (*Builder).appendOperator,
	KindFunction:   (*Builder).appendFunction,
	KindConstant:   (*Builder).appendConstant,
	KindParen:      (*Builder).appendValue,
	KindDot:        (*Builder).appendDot,
	KindPostfix:    (*Builder).appendPostfix,
	KindReciprocal: (*Builder).applyReciprocal,
	KindSign:       (*Builder).toggleSign,
	KindClear:      (*Builder).clearRule,
	KindDelete:     (*Builder).deleteRule,
	KindEnter:      (*Builder).enterRule,
}

// Operator characters as they appear in the buffer.
func isOpChar(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// endsOperand reports whether c closes a complete operand, so that a
// following function or constant needs an explicit "*". The 'e' and 'i'
// cases cover the constants e and pi.
func endsOperand(c byte) bool {
	return isDigit(c) || c == ')' || c == 'e' || c == 'i' || c == '!'
}

// acceptsPrefixOnly reports whether the buffer is empty or waits for an operand.
func (b *Builder) acceptsPrefixOnly() bool {
	if len(b.buf) == 0 {
		return true
	}
	last := b.last()
	return isOpChar(last) || last == '('
}

func (b *Builder) appendValue(tok Token) bool {
	b.buf = append(b.buf, tok.Value...)
	return true
}

func (b *Builder) appendOperator(tok Token) bool {
	op := tok.Value[0]

	if op == '-' && b.acceptsPrefixOnly() {
		b.buf = append(b.buf, op)
		return true
	}
	if len(b.buf) == 0 {
		return false
	}

	last := b.last()
	if isOpChar(last) {
		b.buf[len(b.buf)-1] = op
		return true
	}
	if last == '(' {
		return false
	}

	b.buf = append(b.buf, op)
	return true
}

func (b *Builder) implicitMultiply() {
	if len(b.buf) > 0 && endsOperand(b.last()) {
		b.buf = append(b.buf, '*')
	}
}

func (b *Builder) appendFunction(tok Token) bool {
	b.implicitMultiply()
	b.buf = append(b.buf, tok.Value...)
	b.buf = append(b.buf, '(')
	return true
}

func (b *Builder) appendConstant(tok Token) bool {
	b.implicitMultiply()
	b.buf = append(b.buf, tok.Value...)
	return true
}

func (b *Builder) appendDot(Token) bool {
	if len(b.buf) > 0 && b.last() == '.' {
		return false
	}
	if len(b.buf) == 0 || !isDigit(b.last()) {
		b.buf = append(b.buf, "0."...)
		return true
	}
	for i := len(b.buf) - 1; i >= 0; i-- {
		c := b.buf[i]
		if c == '.' {
			return false
		}
		if !isDigit(c) {
			break
		}
	}
	b.buf = append(b.buf, '.')
	return true
}

func (b *Builder) appendPostfix(tok Token) bool {
	if b.acceptsPrefixOnly() {
		return false
	}
	b.buf = append(b.buf, tok.Value...)
	return true
}

// applyReciprocal wraps the last atom as 1/(atom). On an empty buffer it
// leaves "1/(" open for the denominator that follows.
func (b *Builder) applyReciprocal(tok Token) bool {
	if len(b.buf) == 0 {
		b.buf = append(b.buf, tok.Value...)
		return true
	}
	return b.wrapLastAtom(tok.Value, ")")
}

func (b *Builder) toggleSign(tok Token) bool {
	if b.acceptsPrefixOnly() {
		b.buf = append(b.buf, tok.Value...)
		return true
	}
	return b.wrapLastAtom("(-1)*(", ")")
}

func (b *Builder) clearRule(Token) bool {
	b.Clear()
	return true
}

func (b *Builder) deleteRule(Token) bool {
	b.DeleteOne()
	return true
}

func (b *Builder) enterRule(Token) bool {
	return true
}

// wrapLastAtom surrounds the trailing operand with prefix and suffix.
//
// A trailing ")" selects the whole group back to its matching "(", together
// with the name of the function it belongs to. Otherwise the atom is the run
// of letters, digits and dots at the end of the buffer.
func (b *Builder) wrapLastAtom(prefix, suffix string) bool {
	end := len(b.buf)
	last := end - 1

	var start int
	if b.buf[last] == ')' {
		start = b.matchingOpenParen(last)
		for start > 0 && isLetter(b.buf[start-1]) {
			start--
		}
	} else {
		start = last
		for start >= 0 {
			c := b.buf[start]
			if !isLetter(c) && !isDigit(c) && c != '.' {
				break
			}
			start--
		}
		start++
		if start >= end {
			return false
		}
	}

	wrapped := make([]byte, 0, end+len(prefix)+len(suffix))
	wrapped = append(wrapped, b.buf[:start]...)
	wrapped = append(wrapped, prefix...)
	wrapped = append(wrapped, b.buf[start:]...)
	wrapped = append(wrapped, suffix...)
	b.buf = wrapped
	return true
}

// matchingOpenParen returns the index of the "(" that closes at closeIndex,
// or 0 when the parentheses are unbalanced.
func (b *Builder) matchingOpenParen(closeIndex int) int {
	depth := 0
	for i := closeIndex; i >= 0; i-- {
		switch b.buf[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return 0
}
