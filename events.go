package regexpp

// EventSink receives the builder events the Validator emits while scanning a
// pattern. Events are strictly properly nested: every Enter has a matching
// Leave at the same depth, in LIFO order. All offsets are code-unit indices.
//
// A sink that only cares about a few events can embed NopSink and override
// the methods it needs.
type EventSink interface {
	OnLiteralEnter(start int)
	OnLiteralLeave(start, end int)
	OnFlags(start, end int, flags Flag)

	OnPatternEnter(start int)
	OnPatternLeave(start, end int)
	OnAlternativeEnter(start, index int)
	OnAlternativeLeave(start, end, index int)

	OnGroupEnter(start int)
	OnGroupLeave(start, end int)
	OnModifiersEnter(start int)
	OnModifiersLeave(start, end int)
	OnAddModifiers(start, end int, flags Flag)
	OnRemoveModifiers(start, end int, flags Flag)
	OnCapturingGroupEnter(start int, name string)
	OnCapturingGroupLeave(start, end int, name string)

	OnQuantifier(start, end, min, max int, greedy bool)

	OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool)
	OnLookaroundAssertionLeave(start, end int, kind AssertionKind, negate bool)
	OnEdgeAssertion(start, end int, kind AssertionKind)
	OnWordBoundaryAssertion(start, end int, negate bool)

	OnAnyCharacterSet(start, end int)
	OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool)
	OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool)
	OnCharacter(start, end int, value rune)
	OnBackreference(start, end, number int, name string)

	OnCharacterClassEnter(start int, negate, unicodeSets bool)
	OnCharacterClassLeave(start, end int, negate bool)
	OnCharacterClassRange(start, end int, min, max rune)
	OnClassIntersection(start, end int)
	OnClassSubtraction(start, end int)
	OnClassStringDisjunctionEnter(start int)
	OnClassStringDisjunctionLeave(start, end int)
	OnStringAlternativeEnter(start, index int)
	OnStringAlternativeLeave(start, end, index int)
}

// NopSink discards every event. Embed it to implement EventSink partially;
// the Validator uses it directly for pure validation.
type NopSink struct{}

func (NopSink) OnLiteralEnter(int)                                            {}
func (NopSink) OnLiteralLeave(int, int)                                       {}
func (NopSink) OnFlags(int, int, Flag)                                        {}
func (NopSink) OnPatternEnter(int)                                            {}
func (NopSink) OnPatternLeave(int, int)                                       {}
func (NopSink) OnAlternativeEnter(int, int)                                   {}
func (NopSink) OnAlternativeLeave(int, int, int)                              {}
func (NopSink) OnGroupEnter(int)                                              {}
func (NopSink) OnGroupLeave(int, int)                                         {}
func (NopSink) OnModifiersEnter(int)                                          {}
func (NopSink) OnModifiersLeave(int, int)                                     {}
func (NopSink) OnAddModifiers(int, int, Flag)                                 {}
func (NopSink) OnRemoveModifiers(int, int, Flag)                              {}
func (NopSink) OnCapturingGroupEnter(int, string)                             {}
func (NopSink) OnCapturingGroupLeave(int, int, string)                        {}
func (NopSink) OnQuantifier(int, int, int, int, bool)                         {}
func (NopSink) OnLookaroundAssertionEnter(int, AssertionKind, bool)           {}
func (NopSink) OnLookaroundAssertionLeave(int, int, AssertionKind, bool)      {}
func (NopSink) OnEdgeAssertion(int, int, AssertionKind)                       {}
func (NopSink) OnWordBoundaryAssertion(int, int, bool)                        {}
func (NopSink) OnAnyCharacterSet(int, int)                                    {}
func (NopSink) OnEscapeCharacterSet(int, int, CharacterSetKind, bool)         {}
func (NopSink) OnUnicodePropertyCharacterSet(int, int, string, string, bool, bool) {}
func (NopSink) OnCharacter(int, int, rune)                                    {}
func (NopSink) OnBackreference(int, int, int, string)                         {}
func (NopSink) OnCharacterClassEnter(int, bool, bool)                         {}
func (NopSink) OnCharacterClassLeave(int, int, bool)                          {}
func (NopSink) OnCharacterClassRange(int, int, rune, rune)                    {}
func (NopSink) OnClassIntersection(int, int)                                  {}
func (NopSink) OnClassSubtraction(int, int)                                   {}
func (NopSink) OnClassStringDisjunctionEnter(int)                             {}
func (NopSink) OnClassStringDisjunctionLeave(int, int)                        {}
func (NopSink) OnStringAlternativeEnter(int, int)                             {}
func (NopSink) OnStringAlternativeLeave(int, int, int)                        {}

var _ EventSink = NopSink{}
