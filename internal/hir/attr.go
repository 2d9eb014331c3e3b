package hir

import "checkattr/internal/source"

// AttrStyle tells `#![inner]` from `#[outer]` attributes.
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// MetaKind is the shape of an attribute or of one of its nested arguments.
type MetaKind uint8

const (
	MetaWord      MetaKind = iota // `inline`
	MetaList                      // `repr(C, align(8))`
	MetaNameValue                 // `export_name = "x"`
	MetaLiteral                   // `42` inside a list; has no name
)

func (k MetaKind) String() string {
	switch k {
	case MetaWord:
		return "word"
	case MetaList:
		return "list"
	case MetaNameValue:
		return "name_value"
	case MetaLiteral:
		return "literal"
	}
	return "unknown"
}

type LitKind uint8

const (
	LitStr LitKind = iota
	LitInt
	LitBool
	LitFloat
)

func (k LitKind) String() string {
	switch k {
	case LitStr:
		return "str"
	case LitInt:
		return "int"
	case LitBool:
		return "bool"
	case LitFloat:
		return "float"
	}
	return "unknown"
}

// Lit is a literal as written in an attribute.
type Lit struct {
	Kind  LitKind
	Value string
	Span  source.Span
}

// MetaItem is one nested argument of a list attribute. Literal items carry
// Lit and no name; list items carry Args; name-value items carry Lit.
type MetaItem struct {
	Kind MetaKind
	Name source.StringID
	Span source.Span
	Args []MetaItem
	Lit  *Lit
}

// HasName reports whether the item has an identifier. `repr(42)` does not.
func (m MetaItem) HasName() bool {
	return m.Kind != MetaLiteral && m.Name != source.NoStringID
}

// MetaItemList returns the nested arguments of a list item.
func (m MetaItem) MetaItemList() ([]MetaItem, bool) {
	if m.Kind != MetaList {
		return nil, false
	}
	return m.Args, true
}

// Attr is an attribute as recorded by the parser: a name plus an optional
// argument list or value. Paths that are not a single identifier have
// Name == NoStringID.
type Attr struct {
	Name  source.StringID
	Span  source.Span
	Style AttrStyle
	Kind  MetaKind
	Args  []MetaItem
	Value *Lit
}

// MetaItemList returns the arguments of `#[name(...)]`. Word and name-value
// attributes have none.
func (a Attr) MetaItemList() ([]MetaItem, bool) {
	if a.Kind != MetaList {
		return nil, false
	}
	return a.Args, true
}
