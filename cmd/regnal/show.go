package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/infrastructure/styles"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <ruler-id>",
		Short: "Show a ruler profile",
		Long:  "Shows reign, biography, achievements, sources and suggested reading for a ruler.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		profile, err := d.DetailHandler.Handle(ctx, args[0])
		if err != nil {
			return err
		}
		return renderProfile(cmd.OutOrStdout(), styles.DefaultStyles(), profile)
	})
}
