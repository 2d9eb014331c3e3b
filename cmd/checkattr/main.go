package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"checkattr/internal/version"
)

// errDiagnostics signals that errors were reported; they are already printed.
var errDiagnostics = errors.New("errors reported")

// newRootCmd builds the command tree. Tests build a fresh one per run.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "checkattr",
		Short: "Attribute placement checker for resolved crate trees",
		Long: `checkattr reads crate documents (the item tree and its attributes) and
reports attributes placed on constructs they do not apply to, such as
#[inline] on a struct or #[repr(u8)] on a function.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("config", "", "path to checkattr.toml (default: search upward)")
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "checkattr:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color and keeps fatih/color's global switch in sync.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	var on bool
	switch mode {
	case "on", "always":
		on = true
	case "off", "never":
		on = false
	case "auto", "":
		_, noColor := os.LookupEnv("NO_COLOR")
		on = !noColor && cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout)
	default:
		return false, fmt.Errorf("unknown color mode %q (expected auto|on|off)", mode)
	}
	color.NoColor = !on
	return on, nil
}
