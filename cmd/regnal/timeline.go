package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/infrastructure/styles"
)

func newTimelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Show dynasties in chronological order",
		RunE:  runTimeline,
	}
}

func runTimeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.TimelineHandler.Handle(ctx)
		if err != nil {
			return fmt.Errorf("building timeline: %w", err)
		}
		return renderTimeline(cmd.OutOrStdout(), styles.DefaultStyles(), result.Timeline)
	})
}
