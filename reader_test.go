package regexpp

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCharClassifiers(t *testing.T) {
	assert.Equal(t, isHexDigit('0'-1), false)
	assert.Equal(t, isHexDigit('0'), true)
	assert.Equal(t, isHexDigit('9'), true)
	assert.Equal(t, isHexDigit('9'+1), false)
	assert.Equal(t, isHexDigit('a'), true)
	assert.Equal(t, isHexDigit('f'), true)
	assert.Equal(t, isHexDigit('f'+1), false)
	assert.Equal(t, isHexDigit('A'), true)
	assert.Equal(t, isHexDigit('F'), true)
	assert.Equal(t, isHexDigit('F'+1), false)

	assert.Equal(t, isDecimalDigit('0'), true)
	assert.Equal(t, isDecimalDigit('9'), true)
	assert.Equal(t, isDecimalDigit('a'), false)

	assert.Equal(t, isOctalDigit('7'), true)
	assert.Equal(t, isOctalDigit('8'), false)

	assert.Equal(t, isASCIIWordChar('_'), true)
	assert.Equal(t, isASCIIWordChar('z'), true)
	assert.Equal(t, isASCIIWordChar('-'), false)

	for i, c := range "0123456789abcdef" {
		assert.Equal(t, hexDigitValue(c), rune(i))
	}
	for i, c := range "ABCDEF" {
		assert.Equal(t, hexDigitValue(c), rune(10+i))
	}

	assert.Equal(t, isHighSurrogate(0xD800), true)
	assert.Equal(t, isHighSurrogate(0xDBFF), true)
	assert.Equal(t, isHighSurrogate(0xDC00), false)
	assert.Equal(t, isLowSurrogate(0xDC00), true)
	assert.Equal(t, isLowSurrogate(0xDFFF), true)
	assert.Equal(t, isLowSurrogate(0xD800), false)
	assert.Equal(t, isSurrogate(0xD7FF), false)
	assert.Equal(t, isSurrogate(0xD800), true)
	assert.Equal(t, isSurrogate(0xDFFF), true)
	assert.Equal(t, isSurrogate(0xE000), false)
}

func newTestReader(src string, unicodeMode bool) *reader {
	units := encodeUnits(src)
	r := &reader{}
	r.reset(units, 0, len(units), unicodeMode)
	return r
}

func TestReaderStepping(t *testing.T) {
	r := newTestReader("ab", false)
	assert.Equal(t, r.current(), 'a')
	assert.Equal(t, r.lookahead(), 'b')
	assert.Equal(t, r.lookahead2(), eof)
	assert.Equal(t, r.eat('x'), false)
	assert.Equal(t, r.eat('a'), true)
	assert.Equal(t, r.offset(), 1)
	r.advance()
	assert.Equal(t, r.atEnd(), true)
	assert.Equal(t, r.current(), eof)
	r.rewind(0)
	assert.Equal(t, r.eat2('a', 'b'), true)
	assert.Equal(t, r.atEnd(), true)
}

func TestReaderSurrogates(t *testing.T) {
	// 😀 encodes as the pair D83D DE00
	r := newTestReader("😀x", true)
	assert.Equal(t, r.current(), rune(0x1F600))
	assert.Equal(t, r.lookahead(), 'x')
	r.advance()
	assert.Equal(t, r.offset(), 2)

	r = newTestReader("😀x", false)
	assert.Equal(t, r.current(), rune(0xD83D))
	assert.Equal(t, r.lookahead(), rune(0xDE00))
	r.advance()
	assert.Equal(t, r.offset(), 1)
}

func TestReaderDigitRuns(t *testing.T) {
	r := newTestReader("123x", false)
	n, ok := r.eatDecimalDigits()
	assert.Equal(t, ok, true)
	assert.Equal(t, n, 123)
	assert.Equal(t, r.offset(), 3)

	r = newTestReader("x", false)
	_, ok = r.eatDecimalDigits()
	assert.Equal(t, ok, false)

	r = newTestReader("1f x", false)
	v, ok := r.eatFixedHexDigits(2)
	assert.Equal(t, ok, true)
	assert.Equal(t, v, 0x1f)

	r = newTestReader("1fx", false)
	_, ok = r.eatFixedHexDigits(3)
	assert.Equal(t, ok, false)
	assert.Equal(t, r.offset(), 0)
}

func TestReaderUnicodeEscapes(t *testing.T) {
	// the cursor starts after "\u" in every case
	r := newTestReader("0041", false)
	cp, ok := r.eatUnicodeEscape(false)
	assert.Equal(t, ok, true)
	assert.Equal(t, cp, 'A')

	r = newTestReader("{1F600}", true)
	cp, ok = r.eatUnicodeEscape(true)
	assert.Equal(t, ok, true)
	assert.Equal(t, cp, rune(0x1F600))

	// the braced form is unicode-mode only
	r = newTestReader("{1F600}", false)
	_, ok = r.eatUnicodeEscape(false)
	assert.Equal(t, ok, false)
	assert.Equal(t, r.offset(), 0)

	// a surrogate pair escape combines
	r = newTestReader(`D83D\uDE00`, true)
	cp, ok = r.eatUnicodeEscape(true)
	assert.Equal(t, ok, true)
	assert.Equal(t, cp, rune(0x1F600))

	// a lead surrogate with no valid trail stays alone
	r = newTestReader(`D83Dxx`, true)
	cp, ok = r.eatUnicodeEscape(true)
	assert.Equal(t, ok, true)
	assert.Equal(t, cp, rune(0xD83D))
	assert.Equal(t, r.offset(), 4)

	// out-of-range code points are rejected
	r = newTestReader("{110000}", true)
	_, ok = r.eatUnicodeEscape(true)
	assert.Equal(t, ok, false)
	assert.Equal(t, r.offset(), 0)
}

func TestReaderStringInRange(t *testing.T) {
	r := newTestReader("ab😀cd", false)
	assert.Equal(t, r.stringInRange(2, 4), "😀")
	assert.Equal(t, r.stringInRange(0, 2), "ab")
}
