package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/server"
)

type serveFlags struct {
	addr  string
	graph string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the question page",
		Long:  "Loads the knowledge graph once and serves the question page, a JSON answer API and metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.addr, "addr", "a", "", "Listen address (default: from config)")
	cmd.Flags().StringVarP(&flags.graph, "graph", "g", "", "Graph file to load (default: from config)")

	return cmd
}

func runServe(cmd *cobra.Command, flags serveFlags) error {
	return withDeps(func(d *Deps) error {
		addr := flags.addr
		if addr == "" {
			addr = d.Config.Server.Addr
		}
		path := graphPath(d, flags.graph)

		// A failed load still serves; the page reports the error.
		query, loadErr := d.LoadQueryHandler(path)
		if loadErr != nil {
			loadErr = describeLoadError(path, loadErr)
		}

		srv, err := server.New(server.Config{
			Query:     query,
			GraphPath: path,
			LoadErr:   loadErr,
			Logger:    d.Logger,
		})
		if err != nil {
			return err
		}

		return srv.Run(cmd.Context(), addr)
	})
}
