package diag

import (
	"fmt"
	"strconv"
)

// Code identifies the rule that produced a diagnostic. Codes below 1000 are
// language error codes and render as E0xxx; the 9000 range belongs to the tool.
type Code uint16

const (
	// NoCode marks diagnostics that carry no stable code (target_feature misuse).
	NoCode Code = 0

	// attribute placement and representation hints
	AttrReprTarget          Code = 517
	AttrInlineTarget        Code = 518
	AttrInlineArgCount      Code = 534
	AttrInlineArgInvalid    Code = 535
	AttrReprUnknownHint     Code = 552
	AttrExportNameFormat    Code = 558
	AttrLiteralUnsupported  Code = 565
	AttrReprConflict        Code = 566
	AttrReprTransparent     Code = 692
	AttrNonExhaustiveTarget Code = 698
	AttrNonExhaustiveForm   Code = 699

	// tool
	IOLoadFileError  Code = 9001
	IODecodeError    Code = 9002
	CfgInvalidOption Code = 9101
)

var codeDescription = map[Code]string{
	NoCode:                  "Unclassified diagnostic",
	AttrReprTarget:          "representation hint applied to an unsupported item",
	AttrInlineTarget:        "inline attribute applied to something that is not a function",
	AttrInlineArgCount:      "inline attribute expects exactly one argument",
	AttrInlineArgInvalid:    "inline attribute argument must be `always` or `never`",
	AttrReprUnknownHint:     "unrecognized representation hint",
	AttrExportNameFormat:    "export_name attribute has invalid format",
	AttrLiteralUnsupported:  "literal where an identifier is expected",
	AttrReprConflict:        "conflicting representation hints",
	AttrReprTransparent:     "transparent struct cannot have other repr hints",
	AttrNonExhaustiveTarget: "non_exhaustive applied to something that is not a struct or enum definition",
	AttrNonExhaustiveForm:   "non_exhaustive attribute takes no arguments",
	IOLoadFileError:         "I/O load file error",
	IODecodeError:           "crate document cannot be decoded",
	CfgInvalidOption:        "invalid configuration option",
}

// Codes returns every known code in ascending order.
func Codes() []Code {
	return []Code{
		AttrReprTarget,
		AttrInlineTarget,
		AttrInlineArgCount,
		AttrInlineArgInvalid,
		AttrReprUnknownHint,
		AttrExportNameFormat,
		AttrLiteralUnsupported,
		AttrReprConflict,
		AttrReprTransparent,
		AttrNonExhaustiveTarget,
		AttrNonExhaustiveForm,
		IOLoadFileError,
		IODecodeError,
		CfgInvalidOption,
	}
}

// ParseCode accepts either the rendered ID ("E0517", "IO9001") or the bare number.
func ParseCode(s string) (Code, bool) {
	for _, c := range Codes() {
		if c.ID() == s || strconv.Itoa(int(c)) == s || fmt.Sprintf("%04d", int(c)) == s {
			return c, true
		}
	}
	return NoCode, false
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic == 0:
		return ""
	case ic < 1000:
		return fmt.Sprintf("E%04d", ic)
	case ic >= 9000 && ic < 9100:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9100 && ic < 9200:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return fmt.Sprintf("X%04d", int(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[NoCode]
	}
	return desc
}

func (c Code) String() string {
	if c == NoCode {
		return c.Title()
	}
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
