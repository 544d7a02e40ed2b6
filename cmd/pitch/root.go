package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/pitch/internal/app"
)

// Version is set via ldflags at build time.
var Version = "dev"

type globalFlags struct {
	configPath string
	prefsPath  string
	debug      bool
}

func (g *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		Debug:      g.debug,
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "pitch [location]",
		Short: "Present pitch decks in the terminal",
		Long: `pitch shows a fixed set of pitch decks as a scrollable presentation.
A location such as "#lumen" or "#lumen/traction" opens that deck, and
that slide, directly; without one pitch resumes where you left off.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options()
			if len(args) == 1 {
				opts.Location = args[0]
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default ~/.config/pitch/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file path (default ~/.config/pitch/prefs.toml)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write debug entries to the log")

	root.AddCommand(
		newDecksCmd(flags),
		newExportCmd(flags),
		newLogsCmd(flags),
	)
	return root
}
