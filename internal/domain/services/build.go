// Package services contains domain business logic.
package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/ports"
	"github.com/ersonp/kural-core/internal/infrastructure/logger"
	"github.com/ersonp/kural-core/internal/infrastructure/parsers"
)

// BuildResult describes one run of the graph builder.
type BuildResult struct {
	Source       string
	Rows         int
	RowsWithGaps int
	Graph        *entities.Graph
}

// BuildService turns source rows into the kural graph and persists it.
type BuildService struct {
	store ports.GraphStore
	log   *logger.Logger
}

// NewBuildService creates a new build service.
func NewBuildService(store ports.GraphStore, log *logger.Logger) *BuildService {
	return &BuildService{
		store: store,
		log:   log.With("component", "builder"),
	}
}

// Build maps rows onto graph entries in source order.
// Rows with empty fields are kept; the fields stay empty.
func (s *BuildService) Build(rows []parsers.RawRow) *entities.Graph {
	g := entities.NewGraph()
	for _, row := range rows {
		g.Add(EntryFromRow(row))
	}
	return g
}

// BuildFromSource reads the source table at path and builds the graph.
// The source must be found and parse into rows; empty fields only produce warnings.
func (s *BuildService) BuildFromSource(ctx context.Context, path string) (*BuildResult, error) {
	return s.BuildFromSourceAs(ctx, path, "")
}

// BuildFromSourceAs is BuildFromSource with an explicit source format ("csv" or "json").
// An empty format picks the parser from the file extension.
func (s *BuildService) BuildFromSourceAs(ctx context.Context, path, format string) (*BuildResult, error) {
	rows, err := ReadSource(path, format)
	if err != nil {
		return nil, err
	}

	s.log.Info("source loaded", "path", path, "rows", len(rows))

	result := &BuildResult{
		Source: path,
		Rows:   len(rows),
	}

	g := entities.NewGraph()
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("building graph: %w", err)
		}
		if missing := row.MissingFields(); len(missing) > 0 {
			result.RowsWithGaps++
			s.log.Warn("row has empty fields", "line", row.LineNum, "id", row.ID, "fields", missing)
		}
		if invalid := row.InvalidUTF8Fields(); len(invalid) > 0 {
			s.log.Warn("row has invalid UTF-8", "line", row.LineNum, "id", row.ID, "fields", invalid)
		}
		g.Add(EntryFromRow(row))
	}
	result.Graph = g

	if g.Len() < len(rows) {
		s.log.Warn("duplicate ids overwrote earlier rows", "rows", len(rows), "entries", g.Len())
	}

	return result, nil
}

// Save serializes the graph to path.
func (s *BuildService) Save(path string, graph *entities.Graph) error {
	if err := s.store.Save(path, graph); err != nil {
		return fmt.Errorf("saving graph: %w", err)
	}
	s.log.Info("graph saved", "path", path, "entries", graph.Len())
	return nil
}

// ReadSource opens and parses the source table at path in the given format.
// With no format the parser is picked from the file extension, and unknown
// extensions are read as CSV.
func ReadSource(path, format string) ([]parsers.RawRow, error) {
	var parser parsers.Parser
	if format != "" {
		parser = parsers.ForFormat(format)
		if parser == nil {
			return nil, fmt.Errorf("%w: unsupported source format %q", entities.ErrSourceFormat, format)
		}
	} else if parser = parsers.ForFile(path); parser == nil {
		parser = &parsers.CSVParser{}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrSourceNotFound, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrSourceFormat, path, err)
	}
	return rows, nil
}

// EntryFromRow converts a source row into an entry.
// The id is trimmed and category labels are normalized; every literal is kept verbatim.
func EntryFromRow(row parsers.RawRow) entities.Entry {
	return entities.Entry{
		ID:          strings.TrimSpace(row.ID),
		Theme:       entities.NormalizeCategory(row.Theme),
		Virtue:      entities.NormalizeCategory(row.Virtue),
		Emotion:     entities.NormalizeCategory(row.Emotion),
		SourceText:  row.SourceText,
		Translation: row.Translation,
		Scenario:    row.Scenario,
		Question:    row.Question,
		Answer:      row.Answer,
		Framework:   row.Framework,
	}
}
