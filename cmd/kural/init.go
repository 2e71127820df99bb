package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/kural-core/internal/infrastructure/config"
)

type initFlags struct {
	source string
	graph  string
}

func newInitCmd() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a kural workspace",
		Long:  "Creates a .kural directory with the default configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.source, "source", "", "Source table path to record in the config")
	cmd.Flags().StringVar(&flags.graph, "graph", "", "Graph artifact path to record in the config")

	return cmd
}

func runInit(cmd *cobra.Command, flags initFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("kural already initialized in %s", cwd)
	}

	if flags.source == "" && flags.graph == "" {
		err = config.WriteDefault(cwd)
	} else {
		cfg := config.Default()
		if flags.source != "" {
			cfg.Source.Path = flags.source
		}
		if flags.graph != "" {
			cfg.Graph.Path = flags.graph
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		err = config.Write(cwd, cfg)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(cwd))
	fmt.Fprintln(out, "Kural initialized successfully!")

	return nil
}
