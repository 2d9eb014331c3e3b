package codegen

import "strings"

// InlineAttr is the inlining request recorded for a function.
type InlineAttr uint8

const (
	InlineNone InlineAttr = iota
	InlineHint
	InlineAlways
	InlineNever
)

func (a InlineAttr) String() string {
	switch a {
	case InlineHint:
		return "hint"
	case InlineAlways:
		return "always"
	case InlineNever:
		return "never"
	}
	return "none"
}

// FnFlags is a set of boolean function attributes.
type FnFlags uint8

const (
	FnCold FnFlags = 1 << iota
	FnNaked
	FnNoMangle
)

func (f FnFlags) Has(flag FnFlags) bool {
	return f&flag != 0
}

func (f FnFlags) String() string {
	if f == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	if f.Has(FnCold) {
		parts = append(parts, "cold")
	}
	if f.Has(FnNaked) {
		parts = append(parts, "naked")
	}
	if f.Has(FnNoMangle) {
		parts = append(parts, "no_mangle")
	}
	return strings.Join(parts, "|")
}

// FnAttrs is what code generation reads about a function instead of its raw
// attributes.
type FnAttrs struct {
	Flags          FnFlags
	Inline         InlineAttr
	ExportName     string
	TargetFeatures []string
}
