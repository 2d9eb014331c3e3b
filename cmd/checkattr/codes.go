package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"checkattr/internal/diag"
)

var codeExplanations = map[diag.Code]string{
	diag.AttrReprTarget: `A representation hint was given to an item that cannot use it.
C applies to structs, enums and unions; packed and align to structs and
unions; simd and transparent to structs; integer widths to enums.

    #[repr(C)]
    fn f() {}     // not a struct, enum or union`,
	diag.AttrInlineTarget: `#[inline] was placed on something that is not a function: a
struct, a constant, a trait, an associated type, a foreign static.

    #[inline]
    struct S;`,
	diag.AttrInlineArgCount: `#[inline(..)] takes exactly one argument, always or never.

    #[inline()]
    fn f() {}`,
	diag.AttrInlineArgInvalid: `The argument of #[inline(..)] must be always or never.

    #[inline(sometimes)]
    fn f() {}`,
	diag.AttrReprUnknownHint: `A representation hint name is not one of C, packed, simd, align,
transparent or an integer width.

    #[repr(Rust2)]
    struct S;`,
	diag.AttrExportNameFormat: `#[export_name] needs a string value.

    #[export_name]
    fn f() {}     // write #[export_name = "symbol"]`,
	diag.AttrLiteralUnsupported: `A literal appeared where a hint name is expected.

    #[repr(42)]
    struct S;`,
	diag.AttrReprConflict: `The hints cannot be honoured together: more than one integer width,
simd combined with C, or an integer width combined with C on a
field-less enum. This is a warning.

    #[repr(u8, i32)]
    enum E { A }`,
	diag.AttrReprTransparent: `A transparent struct must have no other representation hint.

    #[repr(transparent, C)]
    struct S(u32);`,
	diag.AttrNonExhaustiveTarget: `#[non_exhaustive] only applies to struct and enum definitions.

    #[non_exhaustive]
    fn f() {}`,
	diag.AttrNonExhaustiveForm: `#[non_exhaustive] takes no arguments and no value.

    #[non_exhaustive(foo)]
    struct S;`,
	diag.IOLoadFileError:  `A crate document, or the source file it names, could not be read.`,
	diag.IODecodeError:    `A crate document could not be decoded, or its tree is malformed (unknown item kind, bad span). The message names the offending node.`,
	diag.CfgInvalidOption: `checkattr.toml contains an unknown key or a value outside its domain.`,
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes [code]",
		Short: "List diagnostic codes or explain one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := useColor(cmd)
			if err != nil {
				return err
			}
			styles := newCodeStyles(on)
			if len(args) == 0 {
				renderCodeList(cmd.OutOrStdout(), styles)
				return nil
			}
			code, ok := diag.ParseCode(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("unknown diagnostic code %q", args[0])
			}
			renderCode(cmd.OutOrStdout(), styles, code)
			return nil
		},
	}
}

type codeStyles struct {
	id, title, body, box lipgloss.Style
}

func newCodeStyles(color bool) codeStyles {
	s := codeStyles{
		id:    lipgloss.NewStyle().Width(8),
		title: lipgloss.NewStyle(),
		body:  lipgloss.NewStyle().PaddingLeft(2),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if color {
		s.id = s.id.Bold(true).Foreground(lipgloss.Color("1"))
		s.title = s.title.Bold(true).Foreground(lipgloss.Color("7"))
		s.box = s.box.BorderForeground(lipgloss.Color("6"))
	}
	return s
}

func renderCodeList(w io.Writer, s codeStyles) {
	for _, c := range diag.Codes() {
		fmt.Fprintln(w, s.id.Render(c.ID())+" "+s.title.Render(c.Title()))
	}
}

func renderCode(w io.Writer, s codeStyles, c diag.Code) {
	header := s.id.UnsetWidth().Render(c.ID()) + " " + s.title.Render(c.Title())
	fmt.Fprintln(w, s.box.Render(header))
	if text, ok := codeExplanations[c]; ok {
		fmt.Fprintln(w, s.body.Render(text))
	}
}
