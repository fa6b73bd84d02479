package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
)

type exportFlags struct {
	view   viewFlags
	format string
	output string
}

type exporter struct {
	format string
	output string
	stdout io.Writer
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current view",
		Long: "Exports the rulers of a view to JSON, CSV or markdown. " +
			"The sqlite format writes a snapshot of the whole catalog to --output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, &flags)
		},
	}

	flags.view.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", FormatJSON, "Output format (json, csv, markdown, sqlite)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags *exportFlags) error {
	if !contains(exportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, exportFormats)
	}
	if flags.format == FormatSQLite && flags.output == "" {
		return errors.New("--output is required for the sqlite format")
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		e := &exporter{
			format: flags.format,
			output: flags.output,
			stdout: cmd.OutOrStdout(),
		}

		if e.format == FormatSQLite {
			return writeSnapshot(ctx, e.stdout, e.output, d.Catalog)
		}

		params, err := flags.view.params(cmd, d.DefaultView)
		if err != nil {
			return err
		}
		result, err := d.ViewHandler.Handle(ctx, params)
		if err != nil {
			return fmt.Errorf("building view: %w", err)
		}

		return e.export(result)
	})
}

func (e *exporter) export(result *handlers.ViewResult) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = e.stdout
	}

	if err := e.formatView(w, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Fprintf(e.stdout, "Exported %d rulers to %s\n", result.Shown, e.output)
	}

	return nil
}

func (e *exporter) formatView(w io.Writer, result *handlers.ViewResult) error {
	switch e.format {
	case FormatJSON:
		return formatJSON(w, result)
	case FormatCSV:
		return formatCSV(w, result.Groups)
	case FormatMarkdown:
		return formatMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, result *handlers.ViewResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func formatCSV(w io.Writer, groups []entities.Group) error {
	writer := csv.NewWriter(w)

	header := []string{"group", "id", "name", "dynasty", "era", "religion", "reign_start", "reign_end", "notes"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, g := range groups {
		for _, r := range g.Rulers {
			row := []string{
				g.Label,
				r.ID,
				r.Name,
				r.Dynasty,
				string(r.Era),
				string(r.Religion),
				strconv.Itoa(r.ReignStart),
				strconv.Itoa(r.ReignEnd),
				r.Notes,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, result *handlers.ViewResult) error {
	if _, err := fmt.Fprintf(w, "# Rulers of Bengal\n\n%s\n", result.Summary()); err != nil {
		return err
	}

	for _, g := range result.Groups {
		if _, err := fmt.Fprintf(w, "\n## %s\n\n", escapeMarkdown(g.Label)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "| Name | Dynasty | Reign | Era | Religion |\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "|------|---------|-------|-----|----------|\n"); err != nil {
			return err
		}

		for _, r := range g.Rulers {
			if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				escapeMarkdown(r.Name),
				escapeMarkdown(r.Dynasty),
				r.Reign(),
				r.Era,
				r.Religion,
			); err != nil {
				return err
			}
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
