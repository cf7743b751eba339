package regexpp

import (
	"math"
	"strconv"
)

// InfinityQuantifier is the Max of a quantifier with no upper bound
// (`*`, `+`, `{n,}`).
const InfinityQuantifier = math.MaxInt

// NodeBase carries the fields shared by every AST node. Start and End are
// half-open UTF-16 code-unit offsets into the parsed source, Raw is the exact
// source text over [Start, End), and Parent is nil only at the root.
type NodeBase struct {
	Start  int
	End    int
	Raw    string
	Parent Node
}

func (b *NodeBase) Span() (start, end int) { return b.Start, b.End }
func (b *NodeBase) RawText() string        { return b.Raw }
func (b *NodeBase) ParentNode() Node       { return b.Parent }
func (b *NodeBase) base() *NodeBase        { return b }

// Node is implemented by every AST node variant.
type Node interface {
	Kind() string
	Span() (start, end int)
	RawText() string
	ParentNode() Node
	base() *NodeBase
}

// AlternativeElement is a node that may appear in an Alternative's element
// list.
type AlternativeElement interface {
	Node
	alternativeElement()
}

// ClassElement is a node that may appear inside a character class body.
type ClassElement interface {
	Node
	classElement()
}

// RegExpLiteral is the root node of a parsed literal such as /ab+c/gi.
type RegExpLiteral struct {
	NodeBase
	Pattern *Pattern
	Flags   *Flags
}

func (*RegExpLiteral) Kind() string { return "RegExpLiteral" }

// Flags records which flags were present in the flag string.
// At most one of Unicode and UnicodeSets is true.
type Flags struct {
	NodeBase
	Global      bool
	IgnoreCase  bool
	Multiline   bool
	Unicode     bool
	Sticky      bool
	DotAll      bool
	HasIndices  bool
	UnicodeSets bool
}

func (*Flags) Kind() string { return "Flags" }

// String returns the canonical flag string in "dgimsuvy" order.
func (f *Flags) String() string {
	buf := make([]byte, 0, 8)
	if f.HasIndices {
		buf = append(buf, 'd')
	}
	if f.Global {
		buf = append(buf, 'g')
	}
	if f.IgnoreCase {
		buf = append(buf, 'i')
	}
	if f.Multiline {
		buf = append(buf, 'm')
	}
	if f.DotAll {
		buf = append(buf, 's')
	}
	if f.Unicode {
		buf = append(buf, 'u')
	}
	if f.UnicodeSets {
		buf = append(buf, 'v')
	}
	if f.Sticky {
		buf = append(buf, 'y')
	}
	return string(buf)
}

// Pattern is the top-level disjunction of a regular expression.
type Pattern struct {
	NodeBase
	Alternatives []*Alternative
}

func (*Pattern) Kind() string { return "Pattern" }

// Alternative is one branch of a disjunction.
type Alternative struct {
	NodeBase
	Elements []AlternativeElement
}

func (*Alternative) Kind() string { return "Alternative" }

// Group is a non-capturing group `(?:...)`, optionally with inline modifiers
// `(?ims-ims:...)`.
type Group struct {
	NodeBase
	Modifiers    *Modifiers
	Alternatives []*Alternative
}

func (*Group) Kind() string          { return "Group" }
func (*Group) alternativeElement() {}

// Modifiers is the `ims-ims` part of a modifier group.
type Modifiers struct {
	NodeBase
	Add    *ModifierFlags
	Remove *ModifierFlags
}

func (*Modifiers) Kind() string { return "Modifiers" }

// ModifierFlags is one side of a Modifiers node.
type ModifierFlags struct {
	NodeBase
	IgnoreCase bool
	Multiline  bool
	DotAll     bool
}

func (*ModifierFlags) Kind() string { return "ModifierFlags" }

// CapturingGroup is `(...)` or `(?<name>...)`. References lists every
// backreference that resolved to this group.
type CapturingGroup struct {
	NodeBase
	Name         string
	Alternatives []*Alternative
	References   []*Backreference
}

func (*CapturingGroup) Kind() string          { return "CapturingGroup" }
func (*CapturingGroup) alternativeElement() {}

// Quantifier wraps exactly one quantifiable element.
// Max is InfinityQuantifier when there is no upper bound.
type Quantifier struct {
	NodeBase
	Min     int
	Max     int
	Greedy  bool
	Element AlternativeElement
}

func (*Quantifier) Kind() string          { return "Quantifier" }
func (*Quantifier) alternativeElement() {}

// AssertionKind discriminates Assertion nodes.
type AssertionKind uint8

const (
	AssertionKindStart        AssertionKind = iota // ^
	AssertionKindEnd                               // $
	AssertionKindWordBoundary                      // \b, \B
	AssertionKindLookahead                         // (?=...), (?!...)
	AssertionKindLookbehind                        // (?<=...), (?<!...)
)

func (k AssertionKind) String() string {
	switch k {
	case AssertionKindStart:
		return "start"
	case AssertionKindEnd:
		return "end"
	case AssertionKindWordBoundary:
		return "word"
	case AssertionKindLookahead:
		return "lookahead"
	case AssertionKindLookbehind:
		return "lookbehind"
	}
	return "AssertionKind(" + strconv.Itoa(int(k)) + ")"
}

// Assertion is an edge assertion, a word-boundary assertion, or a lookaround.
// Negate applies to word boundaries and lookarounds; Alternatives is non-nil
// only for lookarounds.
type Assertion struct {
	NodeBase
	AssertKind   AssertionKind
	Negate       bool
	Alternatives []*Alternative
}

func (*Assertion) Kind() string          { return "Assertion" }
func (*Assertion) alternativeElement() {}

// CharacterSetKind discriminates CharacterSet nodes.
type CharacterSetKind uint8

const (
	CharacterSetKindAny      CharacterSetKind = iota // .
	CharacterSetKindDigit                            // \d, \D
	CharacterSetKindSpace                            // \s, \S
	CharacterSetKindWord                             // \w, \W
	CharacterSetKindProperty                         // \p{...}, \P{...}
)

func (k CharacterSetKind) String() string {
	switch k {
	case CharacterSetKindAny:
		return "any"
	case CharacterSetKindDigit:
		return "digit"
	case CharacterSetKindSpace:
		return "space"
	case CharacterSetKindWord:
		return "word"
	case CharacterSetKindProperty:
		return "property"
	}
	return "CharacterSetKind(" + strconv.Itoa(int(k)) + ")"
}

// CharacterSet is `.`, an escape class, or a Unicode property escape.
// Key and Value are set only for property escapes; Strings marks a property of
// strings (`v` mode only).
type CharacterSet struct {
	NodeBase
	SetKind CharacterSetKind
	Key     string
	Value   string
	Negate  bool
	Strings bool
}

func (*CharacterSet) Kind() string          { return "CharacterSet" }
func (*CharacterSet) alternativeElement() {}
func (*CharacterSet) classElement()       {}

// Character is a single code point, however it was written in the source.
type Character struct {
	NodeBase
	Value rune
}

func (*Character) Kind() string          { return "Character" }
func (*Character) alternativeElement() {}
func (*Character) classElement()       {}

// CharacterClass is `[...]`. UnicodeSets marks a `v`-mode class, whose element
// list may additionally contain nested classes and string disjunctions.
type CharacterClass struct {
	NodeBase
	Negate      bool
	UnicodeSets bool
	Elements    []ClassElement
}

func (*CharacterClass) Kind() string          { return "CharacterClass" }
func (*CharacterClass) alternativeElement() {}
func (*CharacterClass) classElement()       {}

// CharacterClassRange is `a-z` inside a class.
type CharacterClassRange struct {
	NodeBase
	Min *Character
	Max *Character
}

func (*CharacterClassRange) Kind() string    { return "CharacterClassRange" }
func (*CharacterClassRange) classElement() {}

// ExpressionCharacterClass replaces a `v`-mode CharacterClass whose body is a
// set operation. Expression is a ClassIntersection or ClassSubtraction.
type ExpressionCharacterClass struct {
	NodeBase
	Negate     bool
	Expression Node
}

func (*ExpressionCharacterClass) Kind() string          { return "ExpressionCharacterClass" }
func (*ExpressionCharacterClass) alternativeElement() {}
func (*ExpressionCharacterClass) classElement()       {}

// ClassIntersection is `left && right`. Left may itself be a
// ClassIntersection; a chain never mixes with subtraction.
type ClassIntersection struct {
	NodeBase
	Left  Node
	Right Node
}

func (*ClassIntersection) Kind() string { return "ClassIntersection" }

// ClassSubtraction is `left -- right`. Left may itself be a ClassSubtraction;
// a chain never mixes with intersection.
type ClassSubtraction struct {
	NodeBase
	Left  Node
	Right Node
}

func (*ClassSubtraction) Kind() string { return "ClassSubtraction" }

// ClassStringDisjunction is `\q{a|bc|...}` inside a `v`-mode class.
type ClassStringDisjunction struct {
	NodeBase
	Alternatives []*StringAlternative
}

func (*ClassStringDisjunction) Kind() string    { return "ClassStringDisjunction" }
func (*ClassStringDisjunction) classElement() {}

// StringAlternative is one branch of a ClassStringDisjunction. Empty is legal.
type StringAlternative struct {
	NodeBase
	Elements []*Character
}

func (*StringAlternative) Kind() string { return "StringAlternative" }

// Backreference is `\1` (Number > 0) or `\k<name>` (Name != ""). After a
// successful parse Resolved holds every capturing group the reference may
// refer to; Ambiguous is true iff there is more than one (duplicate names
// across branches, ES2025).
type Backreference struct {
	NodeBase
	Number    int
	Name      string
	Ambiguous bool
	Resolved  []*CapturingGroup
}

func (*Backreference) Kind() string          { return "Backreference" }
func (*Backreference) alternativeElement() {}

// walk calls fn for n and every node transitively contained in it, parents
// before children, siblings left to right.
func walk(n Node, fn func(Node)) {
	fn(n)
	switch x := n.(type) {
	case *RegExpLiteral:
		if x.Pattern != nil {
			walk(x.Pattern, fn)
		}
		if x.Flags != nil {
			walk(x.Flags, fn)
		}
	case *Pattern:
		for _, a := range x.Alternatives {
			walk(a, fn)
		}
	case *Alternative:
		for _, e := range x.Elements {
			walk(e, fn)
		}
	case *Group:
		if x.Modifiers != nil {
			walk(x.Modifiers, fn)
		}
		for _, a := range x.Alternatives {
			walk(a, fn)
		}
	case *Modifiers:
		if x.Add != nil {
			walk(x.Add, fn)
		}
		if x.Remove != nil {
			walk(x.Remove, fn)
		}
	case *CapturingGroup:
		for _, a := range x.Alternatives {
			walk(a, fn)
		}
	case *Quantifier:
		walk(x.Element, fn)
	case *Assertion:
		for _, a := range x.Alternatives {
			walk(a, fn)
		}
	case *CharacterClass:
		for _, e := range x.Elements {
			walk(e, fn)
		}
	case *CharacterClassRange:
		walk(x.Min, fn)
		walk(x.Max, fn)
	case *ExpressionCharacterClass:
		walk(x.Expression, fn)
	case *ClassIntersection:
		walk(x.Left, fn)
		walk(x.Right, fn)
	case *ClassSubtraction:
		walk(x.Left, fn)
		walk(x.Right, fn)
	case *ClassStringDisjunction:
		for _, a := range x.Alternatives {
			walk(a, fn)
		}
	case *StringAlternative:
		for _, e := range x.Elements {
			walk(e, fn)
		}
	}
}

// CloneNode deep-copies an AST. The copy owns all of its nodes: parent links
// point into the copy and backreference resolution links are remapped so the
// result shares nothing with the original.
func CloneNode(n Node) Node {
	remap := map[Node]Node{}
	c := cloneRec(n, nil, remap)
	walk(c, func(m Node) {
		switch x := m.(type) {
		case *Backreference:
			for i, g := range x.Resolved {
				x.Resolved[i] = remap[g].(*CapturingGroup)
			}
		case *CapturingGroup:
			for i, r := range x.References {
				x.References[i] = remap[r].(*Backreference)
			}
		}
	})
	return c
}

func cloneRec(n Node, parent Node, remap map[Node]Node) Node {
	var c Node
	switch x := n.(type) {
	case *RegExpLiteral:
		y := &RegExpLiteral{NodeBase: x.NodeBase}
		if x.Pattern != nil {
			y.Pattern = cloneRec(x.Pattern, y, remap).(*Pattern)
		}
		if x.Flags != nil {
			y.Flags = cloneRec(x.Flags, y, remap).(*Flags)
		}
		c = y
	case *Flags:
		y := *x
		c = &y
	case *Pattern:
		y := &Pattern{NodeBase: x.NodeBase}
		for _, a := range x.Alternatives {
			y.Alternatives = append(y.Alternatives, cloneRec(a, y, remap).(*Alternative))
		}
		c = y
	case *Alternative:
		y := &Alternative{NodeBase: x.NodeBase}
		for _, e := range x.Elements {
			y.Elements = append(y.Elements, cloneRec(e, y, remap).(AlternativeElement))
		}
		c = y
	case *Group:
		y := &Group{NodeBase: x.NodeBase}
		if x.Modifiers != nil {
			y.Modifiers = cloneRec(x.Modifiers, y, remap).(*Modifiers)
		}
		for _, a := range x.Alternatives {
			y.Alternatives = append(y.Alternatives, cloneRec(a, y, remap).(*Alternative))
		}
		c = y
	case *Modifiers:
		y := &Modifiers{NodeBase: x.NodeBase}
		if x.Add != nil {
			y.Add = cloneRec(x.Add, y, remap).(*ModifierFlags)
		}
		if x.Remove != nil {
			y.Remove = cloneRec(x.Remove, y, remap).(*ModifierFlags)
		}
		c = y
	case *ModifierFlags:
		y := *x
		c = &y
	case *CapturingGroup:
		y := &CapturingGroup{NodeBase: x.NodeBase, Name: x.Name}
		for _, a := range x.Alternatives {
			y.Alternatives = append(y.Alternatives, cloneRec(a, y, remap).(*Alternative))
		}
		// remapped after the structural pass
		y.References = append([]*Backreference(nil), x.References...)
		c = y
	case *Quantifier:
		y := &Quantifier{NodeBase: x.NodeBase, Min: x.Min, Max: x.Max, Greedy: x.Greedy}
		y.Element = cloneRec(x.Element, y, remap).(AlternativeElement)
		c = y
	case *Assertion:
		y := &Assertion{NodeBase: x.NodeBase, AssertKind: x.AssertKind, Negate: x.Negate}
		for _, a := range x.Alternatives {
			y.Alternatives = append(y.Alternatives, cloneRec(a, y, remap).(*Alternative))
		}
		c = y
	case *CharacterSet:
		y := *x
		c = &y
	case *Character:
		y := *x
		c = &y
	case *CharacterClass:
		y := &CharacterClass{NodeBase: x.NodeBase, Negate: x.Negate, UnicodeSets: x.UnicodeSets}
		for _, e := range x.Elements {
			y.Elements = append(y.Elements, cloneRec(e, y, remap).(ClassElement))
		}
		c = y
	case *CharacterClassRange:
		y := &CharacterClassRange{NodeBase: x.NodeBase}
		y.Min = cloneRec(x.Min, y, remap).(*Character)
		y.Max = cloneRec(x.Max, y, remap).(*Character)
		c = y
	case *ExpressionCharacterClass:
		y := &ExpressionCharacterClass{NodeBase: x.NodeBase, Negate: x.Negate}
		y.Expression = cloneRec(x.Expression, y, remap)
		c = y
	case *ClassIntersection:
		y := &ClassIntersection{NodeBase: x.NodeBase}
		y.Left = cloneRec(x.Left, y, remap)
		y.Right = cloneRec(x.Right, y, remap)
		c = y
	case *ClassSubtraction:
		y := &ClassSubtraction{NodeBase: x.NodeBase}
		y.Left = cloneRec(x.Left, y, remap)
		y.Right = cloneRec(x.Right, y, remap)
		c = y
	case *ClassStringDisjunction:
		y := &ClassStringDisjunction{NodeBase: x.NodeBase}
		for _, a := range x.Alternatives {
			y.Alternatives = append(y.Alternatives, cloneRec(a, y, remap).(*StringAlternative))
		}
		c = y
	case *StringAlternative:
		y := &StringAlternative{NodeBase: x.NodeBase}
		for _, e := range x.Elements {
			y.Elements = append(y.Elements, cloneRec(e, y, remap).(*Character))
		}
		c = y
	case *Backreference:
		y := &Backreference{NodeBase: x.NodeBase, Number: x.Number, Name: x.Name, Ambiguous: x.Ambiguous}
		// remapped after the structural pass
		y.Resolved = append([]*CapturingGroup(nil), x.Resolved...)
		c = y
	default:
		panic(newSyntaxError(ErrorKindInternal, 0, "clone: unknown node kind "+n.Kind()))
	}
	c.base().Parent = parent
	remap[n] = c
	return c
}
