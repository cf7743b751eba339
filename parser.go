// Package regexpp parses and validates ECMAScript regular expressions into
// fully linked ASTs, covering editions 2015 through 2025, the Annex B
// web-compat grammar, and the u and v lexical dialects.
package regexpp

import "unicode/utf16"

// assembler materializes the AST from the validator's event stream. It keeps
// a cursor at the innermost open node; enter events push, leave events
// finalize offsets and raw text and pop.
type assembler struct {
	units []uint16

	node    Node
	literal *RegExpLiteral
	pattern *Pattern
	flags   *Flags

	backreferences  []*Backreference
	capturingGroups []*CapturingGroup

	// operator subtree per open v-mode class, keyed by the class node
	exprBuffer map[*CharacterClass]Node
}

var _ EventSink = (*assembler)(nil)

func (a *assembler) reset(units []uint16) {
	a.units = units
	a.node = nil
	a.literal = nil
	a.pattern = nil
	a.flags = nil
	a.backreferences = a.backreferences[:0]
	a.capturingGroups = a.capturingGroups[:0]
	a.exprBuffer = map[*CharacterClass]Node{}
}

func (a *assembler) raw(start, end int) string {
	return string(utf16.Decode(a.units[start:end]))
}

func (a *assembler) internal(msg string) {
	panic(newSyntaxError(ErrorKindInternal, 0, msg))
}

func (a *assembler) finalize(n Node, end int) {
	b := n.base()
	b.End = end
	b.Raw = a.raw(b.Start, end)
}

// add appends a finished or opening node to the cursor's child collection.
func (a *assembler) add(n Node) {
	switch p := a.node.(type) {
	case *Alternative:
		e, ok := n.(AlternativeElement)
		if !ok {
			a.internal("node " + n.Kind() + " cannot appear in an alternative")
		}
		p.Elements = append(p.Elements, e)
	case *CharacterClass:
		e, ok := n.(ClassElement)
		if !ok {
			a.internal("node " + n.Kind() + " cannot appear in a character class")
		}
		p.Elements = append(p.Elements, e)
	case *StringAlternative:
		c, ok := n.(*Character)
		if !ok {
			a.internal("node " + n.Kind() + " cannot appear in a string alternative")
		}
		p.Elements = append(p.Elements, c)
	default:
		a.internal("no open container for node " + n.Kind())
	}
	n.base().Parent = a.node
}

func (a *assembler) addAlternative(alt *Alternative) {
	switch p := a.node.(type) {
	case *Pattern:
		p.Alternatives = append(p.Alternatives, alt)
	case *Group:
		p.Alternatives = append(p.Alternatives, alt)
	case *CapturingGroup:
		p.Alternatives = append(p.Alternatives, alt)
	case *Assertion:
		p.Alternatives = append(p.Alternatives, alt)
	default:
		a.internal("no open container for an alternative")
	}
	alt.Parent = a.node
}

func (a *assembler) pop(n Node) {
	a.node = n.base().Parent
}

func (a *assembler) OnLiteralEnter(start int) {
	a.literal = &RegExpLiteral{NodeBase: NodeBase{Start: start}}
}

func (a *assembler) OnLiteralLeave(start, end int) {
	a.finalize(a.literal, end)
}

func (a *assembler) OnFlags(start, end int, flags Flag) {
	node := newFlagsNode(start, end, a.raw(start, end), flags)
	if a.literal != nil {
		node.Parent = a.literal
		a.literal.Flags = node
	}
	a.flags = node
}

func (a *assembler) OnPatternEnter(start int) {
	pat := &Pattern{NodeBase: NodeBase{Start: start}}
	if a.literal != nil {
		pat.Parent = a.literal
		a.literal.Pattern = pat
	}
	a.pattern = pat
	a.node = pat
	a.backreferences = a.backreferences[:0]
	a.capturingGroups = a.capturingGroups[:0]
}

func (a *assembler) OnPatternLeave(start, end int) {
	pat, ok := a.node.(*Pattern)
	if !ok {
		a.internal("pattern leave without an open pattern")
	}
	a.finalize(pat, end)
	a.resolveBackreferences()
	a.pop(pat)
}

// resolveBackreferences links every pending reference to the capturing groups
// it refers to, by 1-based emission index or by name. The validator rejects
// unresolvable references, so an empty match set here is a bug.
func (a *assembler) resolveBackreferences() {
	for _, ref := range a.backreferences {
		var matches []*CapturingGroup
		if ref.Name != "" {
			for _, g := range a.capturingGroups {
				if g.Name == ref.Name {
					matches = append(matches, g)
				}
			}
		} else if ref.Number >= 1 && ref.Number <= len(a.capturingGroups) {
			matches = []*CapturingGroup{a.capturingGroups[ref.Number-1]}
		}
		if len(matches) == 0 {
			a.internal("unresolved backreference " + ref.Raw)
		}
		ref.Resolved = matches
		ref.Ambiguous = len(matches) > 1
		for _, g := range matches {
			g.References = append(g.References, ref)
		}
	}
}

func (a *assembler) OnAlternativeEnter(start, index int) {
	alt := &Alternative{NodeBase: NodeBase{Start: start}}
	a.addAlternative(alt)
	a.node = alt
}

func (a *assembler) OnAlternativeLeave(start, end, index int) {
	alt, ok := a.node.(*Alternative)
	if !ok {
		a.internal("alternative leave without an open alternative")
	}
	a.finalize(alt, end)
	a.pop(alt)
}

func (a *assembler) OnGroupEnter(start int) {
	g := &Group{NodeBase: NodeBase{Start: start}}
	a.add(g)
	a.node = g
}

func (a *assembler) OnGroupLeave(start, end int) {
	g, ok := a.node.(*Group)
	if !ok {
		a.internal("group leave without an open group")
	}
	a.finalize(g, end)
	a.pop(g)
}

func (a *assembler) OnModifiersEnter(start int) {
	g, ok := a.node.(*Group)
	if !ok {
		a.internal("modifiers outside a group")
	}
	m := &Modifiers{NodeBase: NodeBase{Start: start, Parent: g}}
	g.Modifiers = m
	a.node = m
}

func (a *assembler) OnModifiersLeave(start, end int) {
	m, ok := a.node.(*Modifiers)
	if !ok {
		a.internal("modifiers leave without open modifiers")
	}
	a.finalize(m, end)
	a.pop(m)
}

func (a *assembler) OnAddModifiers(start, end int, flags Flag) {
	m, ok := a.node.(*Modifiers)
	if !ok {
		a.internal("add modifiers outside a modifiers node")
	}
	m.Add = a.newModifierFlags(start, end, flags, m)
}

func (a *assembler) OnRemoveModifiers(start, end int, flags Flag) {
	m, ok := a.node.(*Modifiers)
	if !ok {
		a.internal("remove modifiers outside a modifiers node")
	}
	m.Remove = a.newModifierFlags(start, end, flags, m)
}

func (a *assembler) newModifierFlags(start, end int, flags Flag, parent Node) *ModifierFlags {
	return &ModifierFlags{
		NodeBase:   NodeBase{Start: start, End: end, Raw: a.raw(start, end), Parent: parent},
		IgnoreCase: flags&FlagIgnoreCase != 0,
		Multiline:  flags&FlagMultiline != 0,
		DotAll:     flags&FlagDotAll != 0,
	}
}

func (a *assembler) OnCapturingGroupEnter(start int, name string) {
	g := &CapturingGroup{NodeBase: NodeBase{Start: start}, Name: name}
	a.add(g)
	a.capturingGroups = append(a.capturingGroups, g)
	a.node = g
}

func (a *assembler) OnCapturingGroupLeave(start, end int, name string) {
	g, ok := a.node.(*CapturingGroup)
	if !ok {
		a.internal("capturing group leave without an open group")
	}
	a.finalize(g, end)
	a.pop(g)
}

// OnQuantifier rewraps the cursor's last element.
func (a *assembler) OnQuantifier(start, end, min, max int, greedy bool) {
	alt, ok := a.node.(*Alternative)
	if !ok || len(alt.Elements) == 0 {
		a.internal("quantifier with nothing to wrap")
	}
	last := alt.Elements[len(alt.Elements)-1]
	alt.Elements = alt.Elements[:len(alt.Elements)-1]

	elemStart := last.base().Start
	q := &Quantifier{
		NodeBase: NodeBase{Start: elemStart, End: end, Raw: a.raw(elemStart, end), Parent: alt},
		Min:      min,
		Max:      max,
		Greedy:   greedy,
		Element:  last,
	}
	last.base().Parent = q
	alt.Elements = append(alt.Elements, q)
}

func (a *assembler) OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool) {
	as := &Assertion{NodeBase: NodeBase{Start: start}, AssertKind: kind, Negate: negate}
	a.add(as)
	a.node = as
}

func (a *assembler) OnLookaroundAssertionLeave(start, end int, kind AssertionKind, negate bool) {
	as, ok := a.node.(*Assertion)
	if !ok {
		a.internal("assertion leave without an open assertion")
	}
	a.finalize(as, end)
	a.pop(as)
}

func (a *assembler) OnEdgeAssertion(start, end int, kind AssertionKind) {
	as := &Assertion{NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)}, AssertKind: kind}
	a.add(as)
}

func (a *assembler) OnWordBoundaryAssertion(start, end int, negate bool) {
	as := &Assertion{
		NodeBase:   NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		AssertKind: AssertionKindWordBoundary,
		Negate:     negate,
	}
	a.add(as)
}

func (a *assembler) OnAnyCharacterSet(start, end int) {
	a.add(&CharacterSet{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		SetKind:  CharacterSetKindAny,
	})
}

func (a *assembler) OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool) {
	a.add(&CharacterSet{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		SetKind:  kind,
		Negate:   negate,
	})
}

func (a *assembler) OnUnicodePropertyCharacterSet(start, end int, key, value string, negate, strings bool) {
	a.add(&CharacterSet{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		SetKind:  CharacterSetKindProperty,
		Key:      key,
		Value:    value,
		Negate:   negate,
		Strings:  strings,
	})
}

func (a *assembler) OnCharacter(start, end int, value rune) {
	a.add(&Character{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		Value:    value,
	})
}

func (a *assembler) OnBackreference(start, end, number int, name string) {
	ref := &Backreference{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		Number:   number,
		Name:     name,
	}
	a.add(ref)
	a.backreferences = append(a.backreferences, ref)
}

func (a *assembler) OnCharacterClassEnter(start int, negate, unicodeSets bool) {
	cc := &CharacterClass{NodeBase: NodeBase{Start: start}, Negate: negate, UnicodeSets: unicodeSets}
	a.add(cc)
	a.node = cc
}

// OnCharacterClassLeave finalizes the class. When a set-operation subtree was
// buffered for it, the class re-types into an ExpressionCharacterClass that
// wraps the operator tree, keeping the positional metadata.
func (a *assembler) OnCharacterClassLeave(start, end int, negate bool) {
	cc, ok := a.node.(*CharacterClass)
	if !ok {
		a.internal("character class leave without an open class")
	}
	a.finalize(cc, end)
	parent := cc.Parent

	expr, buffered := a.exprBuffer[cc]
	if !buffered {
		a.node = parent
		return
	}
	delete(a.exprBuffer, cc)
	if len(cc.Elements) != 0 {
		a.internal("class expression left unconsumed operands")
	}
	ecc := &ExpressionCharacterClass{NodeBase: cc.NodeBase, Negate: cc.Negate}
	ecc.Expression = expr
	expr.base().Parent = ecc
	a.replaceChild(parent, cc, ecc)
	a.node = parent
}

func (a *assembler) replaceChild(parent Node, old, repl Node) {
	switch p := parent.(type) {
	case *Alternative:
		for i := len(p.Elements) - 1; i >= 0; i-- {
			if p.Elements[i] == old {
				p.Elements[i] = repl.(AlternativeElement)
				return
			}
		}
	case *CharacterClass:
		for i := len(p.Elements) - 1; i >= 0; i-- {
			if p.Elements[i] == old {
				p.Elements[i] = repl.(ClassElement)
				return
			}
		}
	}
	a.internal("node to replace not found in parent")
}

// OnCharacterClassRange replaces the last three elements (low endpoint,
// literal hyphen, high endpoint) with one range node.
func (a *assembler) OnCharacterClassRange(start, end int, min, max rune) {
	cc, ok := a.node.(*CharacterClass)
	if !ok || len(cc.Elements) < 3 {
		a.internal("character class range without endpoints")
	}
	n := len(cc.Elements)
	maxChar, okMax := cc.Elements[n-1].(*Character)
	hyphen, okHyphen := cc.Elements[n-2].(*Character)
	minChar, okMin := cc.Elements[n-3].(*Character)
	if !okMax || !okHyphen || !okMin || hyphen.Value != '-' {
		a.internal("character class range endpoints out of place")
	}
	cc.Elements = cc.Elements[:n-3]

	r := &CharacterClassRange{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end), Parent: cc},
		Min:      minChar,
		Max:      maxChar,
	}
	minChar.Parent = r
	maxChar.Parent = r
	cc.Elements = append(cc.Elements, r)
}

func (a *assembler) bufferClassOperator() (*CharacterClass, Node, Node) {
	cc, ok := a.node.(*CharacterClass)
	if !ok || len(cc.Elements) == 0 {
		a.internal("set operation without operands")
	}
	n := len(cc.Elements)
	right := cc.Elements[n-1]
	cc.Elements = cc.Elements[:n-1]

	var left Node
	if buf, ok := a.exprBuffer[cc]; ok {
		left = buf
	} else {
		if len(cc.Elements) == 0 {
			a.internal("set operation without a left operand")
		}
		left = cc.Elements[len(cc.Elements)-1]
		cc.Elements = cc.Elements[:len(cc.Elements)-1]
	}
	return cc, left, right
}

func (a *assembler) OnClassIntersection(start, end int) {
	cc, left, right := a.bufferClassOperator()
	node := &ClassIntersection{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		Left:     left,
		Right:    right,
	}
	left.base().Parent = node
	right.base().Parent = node
	a.exprBuffer[cc] = node
}

func (a *assembler) OnClassSubtraction(start, end int) {
	cc, left, right := a.bufferClassOperator()
	node := &ClassSubtraction{
		NodeBase: NodeBase{Start: start, End: end, Raw: a.raw(start, end)},
		Left:     left,
		Right:    right,
	}
	left.base().Parent = node
	right.base().Parent = node
	a.exprBuffer[cc] = node
}

func (a *assembler) OnClassStringDisjunctionEnter(start int) {
	d := &ClassStringDisjunction{NodeBase: NodeBase{Start: start}}
	a.add(d)
	a.node = d
}

func (a *assembler) OnClassStringDisjunctionLeave(start, end int) {
	d, ok := a.node.(*ClassStringDisjunction)
	if !ok {
		a.internal("string disjunction leave without an open disjunction")
	}
	a.finalize(d, end)
	a.pop(d)
}

func (a *assembler) OnStringAlternativeEnter(start, index int) {
	d, ok := a.node.(*ClassStringDisjunction)
	if !ok {
		a.internal("string alternative outside a string disjunction")
	}
	sa := &StringAlternative{NodeBase: NodeBase{Start: start, Parent: d}}
	d.Alternatives = append(d.Alternatives, sa)
	a.node = sa
}

func (a *assembler) OnStringAlternativeLeave(start, end, index int) {
	sa, ok := a.node.(*StringAlternative)
	if !ok {
		a.internal("string alternative leave without an open alternative")
	}
	a.finalize(sa, end)
	a.pop(sa)
}

// Parser builds RegExp ASTs. It is not safe for concurrent use; run one
// Parser per goroutine.
type Parser struct {
	strict      bool
	ecmaVersion int
	validator   *Validator
	az          assembler
	cache       Cache
}

// NewParser returns a Parser for the given options. A nil opts selects the
// defaults: non-strict, latest edition.
func NewParser(opts *Options) *Parser {
	p := &Parser{}
	p.strict, p.ecmaVersion = normalizeOptions(opts)
	p.validator = NewValidator(&Options{Strict: p.strict, ECMAVersion: p.ecmaVersion}, &p.az)
	return p
}

// SetCache installs a parse cache. Cached trees are handed out as deep
// copies, so callers always own what they receive.
func (p *Parser) SetCache(c Cache) { p.cache = c }

// ParseLiteral parses a whole literal such as /ab+c/gi over
// source[start:end). Offsets are UTF-16 code-unit indices.
func (p *Parser) ParseLiteral(source string, start, end int) (*RegExpLiteral, error) {
	units := encodeUnits(source)
	checkRange(units, start, end)

	var key CacheKey
	if p.cache != nil {
		key = CacheKey{
			Source:      string(utf16.Decode(units[start:end])),
			Literal:     true,
			Strict:      p.strict,
			ECMAVersion: p.ecmaVersion,
		}
		if n, ok := p.cache.Get(key); ok {
			if lit, ok := n.(*RegExpLiteral); ok {
				return lit, nil
			}
		}
	}

	p.az.reset(units)
	if err := p.validator.validateLiteral(units, start, end); err != nil {
		return nil, err
	}
	lit := p.az.literal
	if p.cache != nil {
		p.cache.Put(key, lit)
	}
	return lit, nil
}

// ParsePattern parses a bare pattern over source[start:end) under the given
// modes.
func (p *Parser) ParsePattern(source string, start, end int, modes PatternModes) (*Pattern, error) {
	units := encodeUnits(source)
	checkRange(units, start, end)

	var key CacheKey
	if p.cache != nil {
		key = CacheKey{
			Source:      string(utf16.Decode(units[start:end])),
			Strict:      p.strict,
			ECMAVersion: p.ecmaVersion,
			Unicode:     modes.Unicode,
			UnicodeSets: modes.UnicodeSets,
		}
		if n, ok := p.cache.Get(key); ok {
			if pat, ok := n.(*Pattern); ok {
				return pat, nil
			}
		}
	}

	p.az.reset(units)
	if err := p.validator.validatePatternInternal(units, start, end, modes.Unicode, modes.UnicodeSets); err != nil {
		return nil, err
	}
	pat := p.az.pattern
	if p.cache != nil {
		p.cache.Put(key, pat)
	}
	return pat, nil
}

// ParseFlags parses a flag string over source[start:end).
func (p *Parser) ParseFlags(source string, start, end int) (*Flags, error) {
	units := encodeUnits(source)
	checkRange(units, start, end)
	p.az.reset(units)
	if err := p.validator.validateFlagsInternal(units, start, end); err != nil {
		return nil, err
	}
	return p.az.flags, nil
}

// ParseRegExpLiteral parses source as one whole RegExp literal.
func ParseRegExpLiteral(source string, opts *Options) (*RegExpLiteral, error) {
	units := encodeUnits(source)
	return NewParser(opts).ParseLiteral(source, 0, len(units))
}

// MustParseRegExpLiteral is like [ParseRegExpLiteral] but panics if the
// source cannot be parsed. It simplifies safe initialization of global
// variables holding ASTs.
func MustParseRegExpLiteral(source string, opts *Options) *RegExpLiteral {
	lit, err := ParseRegExpLiteral(source, opts)
	if err != nil {
		panic("regexpp: MustParseRegExpLiteral: " + err.Error())
	}
	return lit
}

// ValidateRegExpLiteral checks source as one whole RegExp literal without
// building an AST.
func ValidateRegExpLiteral(source string, opts *Options) error {
	units := encodeUnits(source)
	return NewValidator(opts, nil).validateLiteral(units, 0, len(units))
}
