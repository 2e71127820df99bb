package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/application/handlers"
)

type buildFlags struct {
	source string
	output string
	format string
	dryRun bool
}

func newBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the knowledge graph from the source table",
		Long:  "Reads the source table (CSV or JSON) and writes the knowledge graph as a Turtle file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "Source table (default: from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Graph file to write (default: from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Source format (csv, json; default: from file extension)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Build and report without writing the graph file")

	return cmd
}

func runBuild(cmd *cobra.Command, flags buildFlags) error {
	if flags.format != "" && !slices.Contains(validSourceFormats, flags.format) {
		return fmt.Errorf("invalid source format %q, valid formats: %v", flags.format, validSourceFormats)
	}

	return withDeps(func(d *Deps) error {
		source := flags.source
		if source == "" {
			source = d.Config.Source.Path
		}
		output := flags.output
		if output == "" {
			output = d.Config.Graph.Path
		}

		result, err := d.BuildHandler().Handle(cmd.Context(), source, output, handlers.BuildOptions{DryRun: flags.dryRun, Format: flags.format})
		if err != nil {
			return describeBuildError(source, err)
		}

		printBuildResult(cmd, result)
		return nil
	})
}

func printBuildResult(cmd *cobra.Command, result *handlers.BuildResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully loaded '%s'. Processing %d Kurals...\n", result.Source, result.Rows)

	if result.RowsWithGaps > 0 {
		fmt.Fprintf(out, "Note: %d rows had empty fields and were stored with blank values.\n", result.RowsWithGaps)
	}
	if result.Entries < result.Rows {
		fmt.Fprintf(out, "Note: %d rows shared an ID with an earlier row and replaced it.\n", result.Rows-result.Entries)
	}

	if result.DryRun {
		fmt.Fprintf(out, "\nDry run: %d Kurals would be written to '%s'.\n", result.Entries, result.Output)
		return
	}

	fmt.Fprintf(out, "\nSuccess! Knowledge graph has been created and saved as '%s'.\n", result.Output)
	fmt.Fprintln(out, "You can open this .ttl file with a text editor to see the structured data.")
}
