package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"checkattr/internal/config"
	"checkattr/internal/diag"
	"checkattr/internal/diagfmt"
	"checkattr/internal/driver"
	"checkattr/internal/source"
	"checkattr/internal/version"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [document|directory]...",
		Short: "Check attribute placement in crate documents",
		Long: `Check reads crate documents (.yaml, .yml, .json, .mp, .msgpack) and reports
misplaced or conflicting attributes. Directories are searched recursively.
Without arguments the paths listed under [check] in checkattr.toml are used.`,
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	cmd.Flags().Int("max-diagnostics", 0, "maximum number of diagnostics per document (0 = no limit)")
	cmd.Flags().Bool("no-warnings", false, "drop warnings")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	cmd.Flags().Bool("with-notes", true, "include notes in output")
	cmd.Flags().Int("jobs", 0, "max parallel crates (0 = GOMAXPROCS)")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	cmd.Flags().String("cpu-profile", "", "write a CPU profile to this file")
	cmd.Flags().String("mem-profile", "", "write a heap profile to this file")
	return cmd
}

// checkSettings is the merged view of flags and checkattr.toml.
type checkSettings struct {
	format           string
	maxDiagnostics   int
	noWarnings       bool
	warningsAsErrors bool
	withNotes        bool
	jobs             int
	fullPath         bool
	timings          bool
	color            bool
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		var ferr *config.FileError
		if errors.As(err, &ferr) {
			if rerr := renderConfigError(cmd, ferr); rerr != nil {
				return rerr
			}
			return errDiagnostics
		}
		return err
	}

	st, err := resolveCheckSettings(cmd, cfg)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.InputPaths()
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input: pass documents or directories, or set check.paths in %s", config.FileName)
	}

	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	result, err := driver.Check(cmd.Context(), paths, driver.Options{
		MaxDiagnostics:   st.maxDiagnostics,
		IgnoreWarnings:   st.noWarnings,
		WarningsAsErrors: st.warningsAsErrors,
		Jobs:             st.jobs,
		EnableTimings:    st.timings,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := result.Bag()
	if err := renderDiagnostics(cmd.OutOrStdout(), bag, result.FileSet, st); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}

	if st.timings {
		for _, f := range result.Files {
			if f.Timing != nil {
				fmt.Fprint(cmd.ErrOrStderr(), f.Timing.Summary(f.Path))
			}
		}
	}

	if bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func resolveCheckSettings(cmd *cobra.Command, cfg *config.Config) (checkSettings, error) {
	var st checkSettings
	var err error
	flags := cmd.Flags()

	// flags win when given, then the config file, then flag defaults
	str := func(name, key, fromCfg string) (string, error) {
		v, err := flags.GetString(name)
		if err != nil {
			return "", fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if !flags.Changed(name) && cfg.IsDefined(key) {
			v = fromCfg
		}
		return v, nil
	}
	integer := func(name, key string, fromCfg int) (int, error) {
		v, err := flags.GetInt(name)
		if err != nil {
			return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if !flags.Changed(name) && cfg.IsDefined(key) {
			v = fromCfg
		}
		return v, nil
	}
	boolean := func(name, key string, fromCfg bool) (bool, error) {
		v, err := flags.GetBool(name)
		if err != nil {
			return false, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if !flags.Changed(name) && cfg.IsDefined(key) {
			v = fromCfg
		}
		return v, nil
	}

	if st.format, err = str("format", "diagnostics.format", cfg.Diagnostics.Format); err != nil {
		return st, err
	}
	if st.maxDiagnostics, err = integer("max-diagnostics", "diagnostics.max", cfg.Diagnostics.Max); err != nil {
		return st, err
	}
	if st.noWarnings, err = boolean("no-warnings", "diagnostics.no_warnings", cfg.Diagnostics.NoWarnings); err != nil {
		return st, err
	}
	if st.warningsAsErrors, err = boolean("warnings-as-errors", "diagnostics.warnings_as_errors", cfg.Diagnostics.WarningsAsErrors); err != nil {
		return st, err
	}
	if st.withNotes, err = boolean("with-notes", "diagnostics.with_notes", cfg.Diagnostics.WithNotes); err != nil {
		return st, err
	}
	if st.jobs, err = integer("jobs", "check.jobs", cfg.Check.Jobs); err != nil {
		return st, err
	}
	if st.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return st, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if st.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return st, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if st.color, err = useColor(cmd); err != nil {
		return st, err
	}

	if st.noWarnings && st.warningsAsErrors {
		return st, fmt.Errorf("no-warnings and warnings-as-errors cannot be used together")
	}
	if !slices.Contains(config.Formats, st.format) {
		return st, fmt.Errorf("unknown format %q (expected %s)", st.format, strings.Join(config.Formats, "|"))
	}
	if st.maxDiagnostics < 0 || st.jobs < 0 {
		return st, fmt.Errorf("max-diagnostics and jobs must not be negative")
	}
	return st, nil
}

func renderDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, st checkSettings) error {
	pathMode := diagfmt.PathModeAuto
	if st.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch st.format {
	case "pretty":
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     st.color,
			PathMode:  pathMode,
			ShowNotes: st.withNotes,
		})
	case "short":
		out := diag.FormatShortDiagnostics(bag.Items(), fs, st.withNotes)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     st.withNotes,
		})
	case "sarif":
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "checkattr",
			ToolVersion:    version.String(),
			InvocationArgs: os.Args[1:],
			PathMode:       pathMode,
		})
	}
	return fmt.Errorf("unknown format: %s", st.format)
}
