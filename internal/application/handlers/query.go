package handlers

import (
	"strings"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/services"
)

// QueryHandler handles questions against the loaded graph.
type QueryHandler struct {
	queryService *services.QueryService
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// QueryResult contains the result of a query.
type QueryResult struct {
	Query string
	Found bool
	Match entities.QueryResult
}

// Handle finds the best matching answer for question.
func (h *QueryHandler) Handle(question string) *QueryResult {
	match, found := h.queryService.FindAnswer(question)
	return &QueryResult{
		Query: question,
		Found: found,
		Match: match,
	}
}

// Explain returns the candidates that share at least one keyword with question,
// in graph order.
func (h *QueryHandler) Explain(question string) []services.ScoredResult {
	var overlapping []services.ScoredResult
	for _, s := range h.queryService.Scores(question) {
		if s.Score > 0 {
			overlapping = append(overlapping, s)
		}
	}
	return overlapping
}

// Entries returns the graph entries, optionally restricted to one theme.
// The theme is compared after category normalization.
func (h *QueryHandler) Entries(theme string) []entities.Entry {
	all := h.queryService.Graph().Entries()
	if strings.TrimSpace(theme) == "" {
		return all
	}

	token := entities.NormalizeCategory(theme)
	var filtered []entities.Entry
	for _, e := range all {
		if e.Theme == token {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
