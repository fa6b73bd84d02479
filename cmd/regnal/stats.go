package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/domain/entities"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.StatsHandler.Handle(ctx)
		if err != nil {
			return fmt.Errorf("computing stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Rulers:    %d\n", result.Rulers)
		fmt.Fprintf(out, "Dynasties: %d\n", result.Dynasties)
		fmt.Fprintf(out, "Eras:      %d\n", result.Eras)
		fmt.Fprintf(out, "Span:      %d years (%s to %s)\n",
			result.SpanYears, entities.FormatYear(result.EarliestYear), entities.FormatYear(result.LatestYear))

		fmt.Fprintln(out, "\nBy era:")
		for _, c := range result.ByEra {
			fmt.Fprintf(out, "  %-16s %d\n", c.Label, c.Rulers)
		}
		fmt.Fprintln(out, "\nBy religion:")
		for _, c := range result.ByReligion {
			fmt.Fprintf(out, "  %-16s %d\n", c.Label, c.Rulers)
		}
		return nil
	})
}

func newErasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eras",
		Short: "List eras and their style keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, era := range entities.AllEras() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", era, era.StyleKey())
			}
			return nil
		},
	}
}

func newReligionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "religions",
		Short: "List religions and their style keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, religion := range entities.AllReligions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", religion, religion.StyleKey())
			}
			return nil
		},
	}
}
