package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/pitch/internal/app"
)

func newDecksCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List the available decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Load(flags.options())
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			id := color.New(color.FgCyan, color.Bold)
			faint := color.New(color.Faint)
			defaultID := env.Registry.DefaultID()

			for _, d := range env.Registry.Decks() {
				marker := "  "
				if d.ID == defaultID {
					marker = color.GreenString("* ")
				}
				fmt.Fprintf(out, "%s%s  %s %s\n",
					marker,
					id.Sprintf("%-12s", d.ID),
					d.Title,
					faint.Sprintf("(%d slides)", d.Len()),
				)
			}
			return nil
		},
	}
}
