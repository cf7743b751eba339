package regexpp

// Flag is a bitmask of RegExp flags. The zero value corresponds to a pattern
// with no flags. Combine flags with bitwise OR, e.g. FlagIgnoreCase|FlagGlobal.
type Flag uint16

const (
	// "g" flag.
	FlagGlobal Flag = 1 << iota

	// Case-insensitive matching ("i" flag).
	FlagIgnoreCase

	// "^" and "$" match line boundaries ("m" flag).
	FlagMultiline

	// "." matches line terminators ("s" flag).
	FlagDotAll

	// Unicode-aware mode ("u" flag).
	FlagUnicode

	// Unicode set notation and string properties ("v" flag).
	FlagUnicodeSets

	// Sticky match from current position ("y" flag).
	FlagSticky

	// Match indices ("d" flag).
	FlagHasIndices

	flagEitherUnicode = FlagUnicode | FlagUnicodeSets
)

// scanFlagText checks that every code unit over [start, end) is a distinct,
// edition-valid flag character and returns the combined bitmask.
func scanFlagText(units []uint16, start, end, ecmaVersion int) (Flag, error) {
	var flags Flag
	for pos := start; pos < end; pos++ {
		var m Flag
		since := 2015
		switch rune(units[pos]) {
		case 'g':
			m = FlagGlobal
		case 'i':
			m = FlagIgnoreCase
		case 'm':
			m = FlagMultiline
		case 'u':
			m = FlagUnicode
		case 'y':
			m = FlagSticky
		case 's':
			m = FlagDotAll
			since = 2018
		case 'd':
			m = FlagHasIndices
			since = 2022
		case 'v':
			m = FlagUnicodeSets
			since = 2024
		default:
			return 0, newSyntaxError(ErrorKindInvalidFlags, pos, "invalid regular expression flag")
		}
		if ecmaVersion < since {
			return 0, newSyntaxError(ErrorKindInvalidFlags, pos, "invalid regular expression flag")
		}
		if flags&m != 0 {
			return 0, newSyntaxError(ErrorKindInvalidFlags, pos, "duplicate regular expression flag")
		}
		flags |= m
	}
	if flags&FlagUnicode != 0 && flags&FlagUnicodeSets != 0 {
		return 0, newSyntaxError(ErrorKindInvalidFlags, start, "flags 'u' and 'v' cannot be combined")
	}
	return flags, nil
}

func newFlagsNode(start, end int, raw string, flags Flag) *Flags {
	return &Flags{
		NodeBase:    NodeBase{Start: start, End: end, Raw: raw},
		Global:      flags&FlagGlobal != 0,
		IgnoreCase:  flags&FlagIgnoreCase != 0,
		Multiline:   flags&FlagMultiline != 0,
		Unicode:     flags&FlagUnicode != 0,
		Sticky:      flags&FlagSticky != 0,
		DotAll:      flags&FlagDotAll != 0,
		HasIndices:  flags&FlagHasIndices != 0,
		UnicodeSets: flags&FlagUnicodeSets != 0,
	}
}
