package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"checkattr/internal/config"
	"checkattr/internal/diag"
	"checkattr/internal/diagfmt"
	"checkattr/internal/source"
)

// loadConfig reads --config when given, otherwise searches upward from the
// working directory. A missing file yields the defaults. An unusable file
// comes back as *config.FileError.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(wd)
}

// renderConfigError reports ferr as a CFG9101 diagnostic on stderr.
func renderConfigError(cmd *cobra.Command, ferr *config.FileError) error {
	fs := source.NewFileSet()
	id := fs.AddVirtual(ferr.Path, nil)
	bag := diag.NewBag(1)
	diag.ReportError(diag.BagReporter{Bag: bag}, diag.CfgInvalidOption, source.Span{File: id}, ferr.Err.Error()).Emit()

	on, err := useColor(cmd)
	if err != nil {
		return err
	}
	return diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: on, PathMode: diagfmt.PathModeAuto})
}
