package regexpp

import "strconv"

// ErrorKind classifies a syntax error. The message wording is not part of the
// API contract; the kind and offset are.
type ErrorKind uint8

const (
	ErrorKindUnterminatedGroup ErrorKind = iota
	ErrorKindUnterminatedClass
	ErrorKindUnterminatedEscape
	ErrorKindInvalidEscape
	ErrorKindInvalidCharacterClass
	ErrorKindInvalidQuantifier
	ErrorKindInvalidUnicodeProperty
	ErrorKindInvalidBackreference
	ErrorKindInvalidFlags
	ErrorKindInvalidNamedCapture
	ErrorKindInvalidGrammar
	ErrorKindPatternTooLarge

	// ErrorKindInternal marks event-protocol misuse. Seeing it means a bug in
	// this package, not in the input.
	ErrorKindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnterminatedGroup:
		return "UnterminatedGroup"
	case ErrorKindUnterminatedClass:
		return "UnterminatedClass"
	case ErrorKindUnterminatedEscape:
		return "UnterminatedEscape"
	case ErrorKindInvalidEscape:
		return "InvalidEscape"
	case ErrorKindInvalidCharacterClass:
		return "InvalidCharacterClass"
	case ErrorKindInvalidQuantifier:
		return "InvalidQuantifier"
	case ErrorKindInvalidUnicodeProperty:
		return "InvalidUnicodeProperty"
	case ErrorKindInvalidBackreference:
		return "InvalidBackreference"
	case ErrorKindInvalidFlags:
		return "InvalidFlags"
	case ErrorKindInvalidNamedCapture:
		return "InvalidNamedCapture"
	case ErrorKindInvalidGrammar:
		return "InvalidGrammar"
	case ErrorKindPatternTooLarge:
		return "PatternTooLarge"
	case ErrorKindInternal:
		return "InternalError"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// RegExpSyntaxError reports a syntax error in a regular expression.
// Offset is a UTF-16 code-unit index into the validated source.
type RegExpSyntaxError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e RegExpSyntaxError) Error() string {
	return "invalid regular expression: " + e.Message + " at " + strconv.Itoa(e.Offset)
}

var _ error = RegExpSyntaxError{}

func newSyntaxError(kind ErrorKind, offset int, msg string) RegExpSyntaxError {
	return RegExpSyntaxError{Kind: kind, Offset: offset, Message: msg}
}
