package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/pitch/internal/config"
	"github.com/five82/pitch/internal/logtail"
)

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the pitch log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.options().ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.LogFile == "" {
				return fmt.Errorf("logging is disabled")
			}

			entries, err := logtail.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintln(out, levelColor(e.Level).Sprint(e.String()))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to show (0 for all)")
	return cmd
}

func levelColor(level string) *color.Color {
	switch level {
	case "DEBUG":
		return color.New(color.Faint)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}
