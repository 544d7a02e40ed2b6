package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/five82/pitch/internal/app"
	"github.com/five82/pitch/internal/export"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export [location]",
		Short: "Export a deck to PDF",
		Long: `Export renders every slide of a deck, plus a page for each slide that
opens a modal, into a landscape PDF named <title>-<date>.pdf. Without a
location the default deck is exported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			location := ""
			if len(args) == 1 {
				location = args[0]
			}
			dir := strings.TrimSpace(outDir)
			if dir == "" {
				dir = env.Config.ExportDir
			}

			var bar *progressbar.ProgressBar
			onPage := func(p export.Page) {
				if bar == nil {
					bar = progressbar.NewOptions(p.Total,
						progressbar.OptionSetWriter(cmd.ErrOrStderr()),
						progressbar.OptionSetDescription("Exporting"),
						progressbar.OptionSetWidth(40),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}
				desc := p.SlideKey
				if p.Modal {
					desc += " (modal)"
				}
				bar.Describe(desc)
				_ = bar.Set(p.Number)
			}

			path, err := env.ExportDeck(cmd.Context(), location, dir, onPage)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Exported"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory for the PDF (default export_dir from config)")
	return cmd
}
