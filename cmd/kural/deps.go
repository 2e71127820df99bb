package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ersonp/kural-core/internal/application/handlers"
	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/ports"
	"github.com/ersonp/kural-core/internal/domain/services"
	"github.com/ersonp/kural-core/internal/infrastructure/config"
	"github.com/ersonp/kural-core/internal/infrastructure/logger"
	"github.com/ersonp/kural-core/internal/infrastructure/turtle"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger
	store  ports.GraphStore
}

// withDeps loads config and builds dependencies, then calls the provided function.
// The logger is flushed when fn returns.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	return fn(&Deps{
		Config: cfg,
		Logger: log,
		store:  turtle.NewStore(),
	})
}

// BuildHandler returns a handler that writes through the Turtle store.
func (d *Deps) BuildHandler() *handlers.BuildHandler {
	return handlers.NewBuildHandler(services.NewBuildService(d.store, d.Logger))
}

// LoadQueryHandler loads the graph at path once and returns a handler over it.
// The handler is usable even when err is non-nil; it then answers from an empty graph.
func (d *Deps) LoadQueryHandler(path string) (*handlers.QueryHandler, error) {
	graph, err := services.LoadGraph(d.store, path)
	if err != nil {
		d.Logger.Warn("graph load failed", "path", path, "error", err)
	} else {
		d.Logger.Debug("graph loaded", "path", path, "entries", graph.Len())
	}
	return handlers.NewQueryHandler(services.NewQueryService(graph)), err
}

// describeLoadError turns a graph load failure into a message for the user.
func describeLoadError(path string, err error) error {
	switch {
	case errors.Is(err, entities.ErrGraphNotFound):
		return fmt.Errorf("the file '%s' was not found. Please make sure it's in the right folder (run 'kural build' first)", path)
	case errors.Is(err, entities.ErrGraphFormat):
		return fmt.Errorf("the file '%s' is not a valid knowledge graph: %w", path, err)
	default:
		return fmt.Errorf("loading knowledge graph '%s': %w", path, err)
	}
}

// describeBuildError turns a build failure into a message for the user.
func describeBuildError(source string, err error) error {
	switch {
	case errors.Is(err, entities.ErrSourceNotFound):
		return fmt.Errorf("could not find the file at the path specified. Please double-check that this path is exactly correct: %s", source)
	case errors.Is(err, entities.ErrSourceFormat):
		return fmt.Errorf("%w. Please check that your CSV file has the correct column headers (e.g., 'Kural_ID', 'Theme', etc.)", err)
	default:
		return err
	}
}
