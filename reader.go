package regexpp

import (
	"math"
	"unicode/utf16"
)

const eof rune = -1

func isHighSurrogate(r rune) bool {
	return (r >> 10) == (0xd800 >> 10)
}
func isLowSurrogate(r rune) bool {
	return (r >> 10) == (0xdc00 >> 10)
}
func isSurrogate(r rune) bool {
	return uint32(r)-0xd800 < 0xe000-0xd800
}

func isDecimalDigit(c rune) bool {
	return uint32(c)-'0' <= 9
}
func isHexDigit(c rune) bool {
	return (uint32(c)-'0' <= 9) || (uint32(lowerASCII(c))-'a' <= 'f'-'a')
}
func isOctalDigit(c rune) bool {
	return uint32(c)-'0' <= 7
}
func isASCIILetter(c rune) bool {
	return uint32(lowerASCII(c))-'a' <= 'z'-'a'
}
func isASCIIWordChar(c rune) bool {
	return isDecimalDigit(c) || isASCIILetter(c) || c == '_'
}

func lowerASCII(c rune) rune {
	return c | ('a' - 'A')
}

func hexDigitValue(c rune) rune {
	return (c & 0b1111) + (c>>6)*9
}

// reader provides positioned code-point access over a window of UTF-16 code
// units. In unicode mode a surrogate pair reads as one code point; otherwise
// every code unit is independent. All offsets are code-unit indices.
type reader struct {
	units       []uint16
	start       int
	end         int
	pos         int
	unicodeMode bool
}

func (r *reader) reset(units []uint16, start, end int, unicodeMode bool) {
	r.units = units
	r.start = start
	r.end = end
	r.pos = start
	r.unicodeMode = unicodeMode
}

func (r *reader) offset() int { return r.pos }

func (r *reader) rewind(pos int) { r.pos = pos }

func (r *reader) atEnd() bool { return r.pos >= r.end }

// codePointAt returns the code point starting at code-unit index i and its
// width in code units, or (eof, 0) past the window end.
func (r *reader) codePointAt(i int) (rune, int) {
	if i >= r.end {
		return eof, 0
	}
	c := rune(r.units[i])
	if r.unicodeMode && isHighSurrogate(c) && i+1 < r.end {
		if lo := rune(r.units[i+1]); isLowSurrogate(lo) {
			return utf16.DecodeRune(c, lo), 2
		}
	}
	return c, 1
}

// current returns the code point at the cursor, or eof.
func (r *reader) current() rune {
	cp, _ := r.codePointAt(r.pos)
	return cp
}

// lookahead returns the code point after the current one, or eof.
func (r *reader) lookahead() rune {
	_, w := r.codePointAt(r.pos)
	cp, _ := r.codePointAt(r.pos + w)
	return cp
}

func (r *reader) lookahead2() rune {
	_, w1 := r.codePointAt(r.pos)
	_, w2 := r.codePointAt(r.pos + w1)
	cp, _ := r.codePointAt(r.pos + w1 + w2)
	return cp
}

func (r *reader) lookahead3() rune {
	_, w1 := r.codePointAt(r.pos)
	_, w2 := r.codePointAt(r.pos + w1)
	_, w3 := r.codePointAt(r.pos + w1 + w2)
	cp, _ := r.codePointAt(r.pos + w1 + w2 + w3)
	return cp
}

// advance moves the cursor past the current code point.
func (r *reader) advance() {
	if _, w := r.codePointAt(r.pos); w > 0 {
		r.pos += w
	}
}

func (r *reader) eat(cp rune) bool {
	if c, w := r.codePointAt(r.pos); c == cp {
		r.pos += w
		return true
	}
	return false
}

func (r *reader) eat2(a, b rune) bool {
	ca, wa := r.codePointAt(r.pos)
	if ca != a {
		return false
	}
	cb, wb := r.codePointAt(r.pos + wa)
	if cb != b {
		return false
	}
	r.pos += wa + wb
	return true
}

func (r *reader) eat3(a, b, c rune) bool {
	ca, wa := r.codePointAt(r.pos)
	if ca != a {
		return false
	}
	cb, wb := r.codePointAt(r.pos + wa)
	if cb != b {
		return false
	}
	cc, wc := r.codePointAt(r.pos + wa + wb)
	if cc != c {
		return false
	}
	r.pos += wa + wb + wc
	return true
}

// stringInRange decodes the code units over [start, end) back to a string.
func (r *reader) stringInRange(start, end int) string {
	return string(utf16.Decode(r.units[start:end]))
}

// eatDecimalDigits consumes a run of [0-9] and returns its value, saturating
// at MaxInt.
func (r *reader) eatDecimalDigits() (int, bool) {
	c := r.current()
	if !isDecimalDigit(c) {
		return 0, false
	}
	var n int64
	for ; isDecimalDigit(c); c = r.current() {
		r.pos++
		d := int64(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
	}
	return int(n), true
}

// eatFixedHexDigits consumes exactly n hex digits or nothing.
func (r *reader) eatFixedHexDigits(n int) (int, bool) {
	start := r.pos
	v := 0
	for i := 0; i < n; i++ {
		c := r.current()
		if !isHexDigit(c) {
			r.rewind(start)
			return 0, false
		}
		r.pos++
		v = v<<4 | int(hexDigitValue(c))
	}
	return v, true
}

// eatUnicodeEscape decodes the tail of a unicode escape after the leading
// "\u" has been consumed: a surrogate pair escape or four fixed hex digits,
// and additionally "{CodePoint}" in unicode mode. Unicode escapes always
// decode to code points, so a "{...}" body may name a lone surrogate.
func (r *reader) eatUnicodeEscape(unicodeMode bool) (rune, bool) {
	if unicodeMode {
		if cp, ok := r.eatSurrogatePairEscape(); ok {
			return cp, true
		}
	}
	if v, ok := r.eatFixedHexDigits(4); ok {
		return rune(v), true
	}
	if unicodeMode {
		if cp, ok := r.eatCodePointEscape(); ok {
			return cp, true
		}
	}
	return 0, false
}

// eatSurrogatePairEscape matches XXXX\uXXXX where the halves form a valid
// surrogate pair, combining them into one code point.
func (r *reader) eatSurrogatePairEscape() (rune, bool) {
	start := r.pos
	lead, ok := r.eatFixedHexDigits(4)
	if !ok || !isHighSurrogate(rune(lead)) {
		r.rewind(start)
		return 0, false
	}
	if !r.eat2('\\', 'u') {
		r.rewind(start)
		return 0, false
	}
	trail, ok := r.eatFixedHexDigits(4)
	if !ok || !isLowSurrogate(rune(trail)) {
		r.rewind(start)
		return 0, false
	}
	return utf16.DecodeRune(rune(lead), rune(trail)), true
}

// eatCodePointEscape matches {HexDigits} with a value of at most U+10FFFF.
func (r *reader) eatCodePointEscape() (rune, bool) {
	start := r.pos
	if !r.eat('{') {
		return 0, false
	}
	var v int64
	digits := 0
	for isHexDigit(r.current()) {
		v = v<<4 | int64(hexDigitValue(r.current()))
		if v > 0x10ffff {
			v = 0x110000
		}
		r.pos++
		digits++
	}
	if digits == 0 || v > 0x10ffff || !r.eat('}') {
		r.rewind(start)
		return 0, false
	}
	return rune(v), true
}
