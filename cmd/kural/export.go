package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/infrastructure/parsers"
)

type exportFlags struct {
	format string
	output string
	theme  string
	graph  string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export graph entries to file",
		Long:  "Exports the entries of the knowledge graph to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "", "Filter by theme")
	cmd.Flags().StringVarP(&flags.graph, "graph", "g", "", "Graph file to load (default: from config)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		path := graphPath(d, flags.graph)
		query, err := d.LoadQueryHandler(path)
		if err != nil {
			return describeLoadError(path, err)
		}

		entries := query.Entries(flags.theme)
		if len(entries) == 0 {
			return fmt.Errorf("no entries found to export")
		}

		return exportEntries(cmd.OutOrStdout(), flags.format, flags.output, entries)
	})
}

func exportEntries(stdout io.Writer, format, output string, entries []entities.Entry) (err error) {
	w := stdout
	if output != "" {
		f, ferr := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if ferr != nil {
			return fmt.Errorf("creating file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatEntries(w, format, entries); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output != "" {
		fmt.Fprintf(stdout, "Exported %d entries to %s\n", len(entries), output)
	}

	return nil
}

func formatEntries(w io.Writer, format string, entries []entities.Entry) error {
	switch format {
	case "json":
		return formatJSON(w, entries)
	case "csv":
		return formatCSV(w, entries)
	case "markdown":
		return formatMarkdown(w, entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// formatJSON writes entries with the same keys the JSON source parser reads.
func formatJSON(w io.Writer, entries []entities.Entry) error {
	if entries == nil {
		entries = []entities.Entry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// formatCSV writes entries with headings the CSV source parser accepts, so the
// output can be built again.
func formatCSV(w io.Writer, entries []entities.Entry) error {
	writer := csv.NewWriter(w)

	header := []string{
		parsers.FieldID,
		parsers.FieldTheme,
		parsers.FieldVirtue,
		parsers.FieldEmotion,
		parsers.FieldSourceText,
		parsers.FieldTranslation,
		parsers.FieldScenario,
		parsers.FieldQuestion,
		parsers.FieldAnswer,
		parsers.FieldFramework,
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Theme,
			e.Virtue,
			e.Emotion,
			e.SourceText,
			e.Translation,
			e.Scenario,
			e.Question,
			e.Answer,
			e.Framework,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, entries []entities.Entry) error {
	if _, err := fmt.Fprintf(w, "# Exported Kurals\n\nTotal: %d entries\n\n", len(entries)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Kural | Theme | Virtue | Emotion | Question |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|-------|-------|--------|---------|----------|\n"); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			escapeMarkdown(e.ID),
			escapeMarkdown(e.Theme),
			escapeMarkdown(e.Virtue),
			escapeMarkdown(e.Emotion),
			escapeMarkdown(e.Question),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
