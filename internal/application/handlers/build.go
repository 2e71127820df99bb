// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/kural-core/internal/domain/services"
)

// BuildHandler handles graph builds from a source table.
type BuildHandler struct {
	buildService *services.BuildService
}

// NewBuildHandler creates a new build handler.
func NewBuildHandler(buildService *services.BuildService) *BuildHandler {
	return &BuildHandler{
		buildService: buildService,
	}
}

// BuildOptions controls build behavior.
type BuildOptions struct {
	DryRun bool   // Build and report without writing the artifact
	Format string // Source format ("csv", "json"); empty picks it from the file extension
}

// BuildResult contains the result of a build.
type BuildResult struct {
	Source       string
	Output       string
	Rows         int
	Entries      int
	RowsWithGaps int
	DryRun       bool
}

// Handle builds the graph from source and writes it to output.
func (h *BuildHandler) Handle(ctx context.Context, source, output string, opts BuildOptions) (*BuildResult, error) {
	built, err := h.buildService.BuildFromSourceAs(ctx, source, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}

	result := &BuildResult{
		Source:       source,
		Output:       output,
		Rows:         built.Rows,
		Entries:      built.Graph.Len(),
		RowsWithGaps: built.RowsWithGaps,
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		return result, nil
	}

	if err := h.buildService.Save(output, built.Graph); err != nil {
		return nil, err
	}

	return result, nil
}
