package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/infrastructure/styles"
	"github.com/ersonp/regnal/internal/infrastructure/tui"
)

func newExploreCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse rulers interactively",
		Long: "Opens the terminal explorer. Press / to search, tab to change grouping, " +
			"e and r to cycle era and religion filters, 1-3 to sort and enter to open a ruler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				params, err := flags.params(cmd, d.DefaultView)
				if err != nil {
					return err
				}

				m := tui.New(ctx, styles.DefaultStyles(), d.ViewHandler, d.DetailHandler, params)
				return tui.Run(ctx, m)
			})
		},
	}

	flags.register(cmd)

	return cmd
}
