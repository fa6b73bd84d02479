package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/services"
)

type importFlags struct {
	format string
	strict bool
	sqlite string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Validate catalog files",
		Long: "Parses and validates JSON, YAML, TOML or CSV catalog files, merged in order. " +
			"With --sqlite the validated catalog is written to a snapshot database.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, yaml, toml, csv, auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on any invalid record")
	cmd.Flags().StringVar(&flags.sqlite, "sqlite", "", "Write the validated catalog to this SQLite file")

	return cmd
}

func runImport(cmd *cobra.Command, paths []string, flags importFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	handler := handlers.NewImportHandler(services.NewImportService())
	opts := handlers.ImportOptions{
		Format: flags.format,
		Strict: flags.strict,
	}

	result, err := handler.Handle(ctx, paths, opts)
	if err != nil {
		return fmt.Errorf("importing files: %w", err)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "Validation errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  %s\n", e.Error())
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Imported: %d dynasties, %d rulers, %d details", result.Dynasties, result.Rulers, result.Details)
	if result.Skipped > 0 {
		fmt.Fprintf(out, ", %d skipped", result.Skipped)
	}
	fmt.Fprintln(out)

	if flags.sqlite == "" {
		return nil
	}

	return writeSnapshot(ctx, out, flags.sqlite, result.Catalog)
}
