package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/infrastructure/styles"
)

func newListCmd() *cobra.Command {
	var (
		flags  viewFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rulers",
		Long:  "Lists rulers filtered, sorted and grouped by the given view parameters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, &flags, format)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "Output format (table, cards)")

	return cmd
}

func runList(cmd *cobra.Command, flags *viewFlags, format string) error {
	if !contains(listFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, listFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		params, err := flags.params(cmd, d.DefaultView)
		if err != nil {
			return err
		}

		result, err := d.ViewHandler.Handle(ctx, params)
		if err != nil {
			return fmt.Errorf("building view: %w", err)
		}

		s := styles.DefaultStyles()
		if format == FormatCards {
			return renderCards(cmd.OutOrStdout(), s, result)
		}
		return renderTable(cmd.OutOrStdout(), s, result)
	})
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [text]",
		Short: "Search rulers by name or dynasty",
		Long:  "Lists matching rulers in order of reign, ungrouped. Without text every ruler is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var text string
	if len(args) == 1 {
		text = args[0]
	}

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.ViewHandler.HandleDetails(ctx, text)
		if err != nil {
			return fmt.Errorf("searching rulers: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Summary())
		for _, r := range result.Rulers() {
			fmt.Fprintf(out, "  %-14s %-32s %s\n", r.ID, r.Name, r.Reign())
		}
		return nil
	})
}
