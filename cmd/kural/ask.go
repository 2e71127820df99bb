package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/application/handlers"
	"github.com/ersonp/kural-core/internal/domain/entities"
)

type askFlags struct {
	graph   string
	explain bool
}

func newAskCmd() *cobra.Command {
	var flags askFlags

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question",
		Long:  "Finds the stored question sharing the most keywords with yours and prints its answer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.graph, "graph", "g", "", "Graph file to load (default: from config)")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "Also list every candidate that shares a keyword")

	return cmd
}

func runAsk(cmd *cobra.Command, question string, flags askFlags) error {
	return withDeps(func(d *Deps) error {
		path := graphPath(d, flags.graph)
		query, err := d.LoadQueryHandler(path)
		if err != nil {
			return describeLoadError(path, err)
		}

		out := cmd.OutOrStdout()
		printResult(out, query.Handle(question))

		if flags.explain {
			printExplain(out, query, question)
		}
		return nil
	})
}

func graphPath(d *Deps, override string) string {
	if override != "" {
		return override
	}
	return d.Config.Graph.Path
}

func printResult(w io.Writer, result *handlers.QueryResult) {
	if !result.Found {
		fmt.Fprintf(w, "\n%s\n", msgNoMatch)
		return
	}
	printAnswer(w, result.Match)
}

func printAnswer(w io.Writer, match entities.QueryResult) {
	fmt.Fprintf(w, "\n%s\n", msgAnswerTitle)
	fmt.Fprintf(w, "Based on Kural #%s:\n", match.EntryID)
	fmt.Fprintf(w, "\nKural: \"%s\"\n", match.Translation)
	fmt.Fprintf(w, "\nAnswer: %s\n", match.Answer)
	fmt.Fprintln(w, msgAnswerRule)
}

func printExplain(w io.Writer, query *handlers.QueryHandler, question string) {
	candidates := query.Explain(question)
	if len(candidates) == 0 {
		fmt.Fprintln(w, "\nNo stored question shares a keyword.")
		return
	}

	fmt.Fprintf(w, "\nCandidates (%d):\n", len(candidates))
	for _, c := range candidates {
		fmt.Fprintf(w, "  [%d] Kural #%s: %s\n", c.Score, c.Result.EntryID, c.Result.Question)
	}
}
