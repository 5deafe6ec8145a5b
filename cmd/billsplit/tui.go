package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/tui"
	"github.com/mmynk/billsplit/pkg/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the widget in the terminal",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the widget; logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logging.SetupWriter(w, cfg.LogLevel)

	return tui.Run(newController(cfg))
}
