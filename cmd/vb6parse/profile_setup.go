package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vb6parse/internal/prof"
)

// activeProfile останавливается в main после Execute; nil-сессия допустима.
var activeProfile *prof.Session

func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var cfg prof.Config
	var err error
	if cfg.CPUPath, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemPath, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.TracePath, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(cfg)
	return err
}
