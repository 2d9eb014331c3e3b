package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkattr/internal/prof"
)

// setupProfiling starts the profilers named by --cpu-profile and
// --mem-profile. The returned func stops them and reports write failures.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	cpuPath, err := cmd.Flags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memPath, err := cmd.Flags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}

	session, err := prof.Start(prof.Options{CPUPath: cpuPath, MemPath: memPath})
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}
