package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/application/handlers"
)

const maxLineSize = 1024 * 1024

func newChatCmd() *cobra.Command {
	var graph string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions interactively",
		Long:  "Starts a question loop over the knowledge graph. Type 'exit' to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				path := graphPath(d, graph)
				query, err := d.LoadQueryHandler(path)
				if err != nil {
					return describeLoadError(path, err)
				}
				return chatLoop(cmd.InOrStdin(), cmd.OutOrStdout(), query)
			})
		},
	}

	cmd.Flags().StringVarP(&graph, "graph", "g", "", "Graph file to load (default: from config)")

	return cmd
}

// chatLoop reads questions from in until "exit" or end of input.
func chatLoop(in io.Reader, out io.Writer, query *handlers.QueryHandler) error {
	fmt.Fprintln(out, msgGraphLoaded)
	fmt.Fprintf(out, "\n%s\n", msgChatBanner)
	fmt.Fprintln(out, msgChatHelp)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		fmt.Fprintf(out, "\n%s", msgPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), exitCommand) {
			fmt.Fprintln(out, msgGoodbye)
			return nil
		}

		printResult(out, query.Handle(line))
	}
}
