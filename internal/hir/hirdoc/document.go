package hirdoc

// Document is the serialised form of a crate as produced by the parser.
// Spans are byte offsets `[start, end]` into the crate's source text.
type Document struct {
	Crate  string   `yaml:"crate" json:"crate" msgpack:"crate"`
	Source string   `yaml:"source,omitempty" json:"source,omitempty" msgpack:"source,omitempty"`
	Span   []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs  []Attr   `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Items  []Item   `yaml:"items,omitempty" json:"items,omitempty" msgpack:"items,omitempty"`
	Macros []Macro  `yaml:"macros,omitempty" json:"macros,omitempty" msgpack:"macros,omitempty"`
}

// Attr is one attribute. Kind may be left out: a value makes it name_value,
// args make it a list, otherwise it is a word. `#[inline()]` needs an
// explicit `kind: list`.
type Attr struct {
	Name  string   `yaml:"name" json:"name" msgpack:"name"`
	Span  []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Kind  string   `yaml:"kind,omitempty" json:"kind,omitempty" msgpack:"kind,omitempty"`
	Inner bool     `yaml:"inner,omitempty" json:"inner,omitempty" msgpack:"inner,omitempty"`
	Args  []Meta   `yaml:"args,omitempty" json:"args,omitempty" msgpack:"args,omitempty"`
	Value *Lit     `yaml:"value,omitempty" json:"value,omitempty" msgpack:"value,omitempty"`
}

// Meta is a nested attribute argument. A literal argument has no name.
type Meta struct {
	Name string   `yaml:"name,omitempty" json:"name,omitempty" msgpack:"name,omitempty"`
	Span []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Kind string   `yaml:"kind,omitempty" json:"kind,omitempty" msgpack:"kind,omitempty"`
	Args []Meta   `yaml:"args,omitempty" json:"args,omitempty" msgpack:"args,omitempty"`
	Lit  *Lit     `yaml:"lit,omitempty" json:"lit,omitempty" msgpack:"lit,omitempty"`
}

type Lit struct {
	Kind  string   `yaml:"kind" json:"kind" msgpack:"kind"`
	Value string   `yaml:"value" json:"value" msgpack:"value"`
	Span  []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
}

// Item is a free item. Items is read for modules, Members for traits, impls
// and foreign blocks, Variants for enums and Body for functions.
type Item struct {
	Kind     string    `yaml:"kind" json:"kind" msgpack:"kind"`
	Name     string    `yaml:"name,omitempty" json:"name,omitempty" msgpack:"name,omitempty"`
	Span     []uint32  `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs    []Attr    `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Generics []Generic `yaml:"generics,omitempty" json:"generics,omitempty" msgpack:"generics,omitempty"`
	Items    []Item    `yaml:"items,omitempty" json:"items,omitempty" msgpack:"items,omitempty"`
	Members  []Member  `yaml:"members,omitempty" json:"members,omitempty" msgpack:"members,omitempty"`
	Variants []Variant `yaml:"variants,omitempty" json:"variants,omitempty" msgpack:"variants,omitempty"`
	Body     []Body    `yaml:"body,omitempty" json:"body,omitempty" msgpack:"body,omitempty"`
}

// Member is a trait item, impl item or foreign item depending on its parent.
type Member struct {
	Kind     string    `yaml:"kind" json:"kind" msgpack:"kind"`
	Name     string    `yaml:"name,omitempty" json:"name,omitempty" msgpack:"name,omitempty"`
	Span     []uint32  `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs    []Attr    `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Generics []Generic `yaml:"generics,omitempty" json:"generics,omitempty" msgpack:"generics,omitempty"`
}

type Generic struct {
	Name  string   `yaml:"name" json:"name" msgpack:"name"`
	Span  []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs []Attr   `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
}

type Variant struct {
	Name string   `yaml:"name" json:"name" msgpack:"name"`
	Span []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Data string   `yaml:"data,omitempty" json:"data,omitempty" msgpack:"data,omitempty"`
}

type Body struct {
	Kind  string   `yaml:"kind" json:"kind" msgpack:"kind"`
	Span  []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs []Attr   `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
}

type Macro struct {
	Name  string   `yaml:"name" json:"name" msgpack:"name"`
	Span  []uint32 `yaml:"span,flow,omitempty" json:"span,omitempty" msgpack:"span,omitempty"`
	Attrs []Attr   `yaml:"attrs,omitempty" json:"attrs,omitempty" msgpack:"attrs,omitempty"`
}
