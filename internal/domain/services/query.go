package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/kural-core/internal/domain/entities"
	"github.com/ersonp/kural-core/internal/domain/ports"
)

// QueryService answers questions against a loaded graph.
// The graph is shared read-only, so one service may serve concurrent callers.
type QueryService struct {
	graph *entities.Graph
}

// NewQueryService creates a new query service over graph.
func NewQueryService(graph *entities.Graph) *QueryService {
	if graph == nil {
		graph = entities.NewGraph()
	}
	return &QueryService{
		graph: graph,
	}
}

// LoadGraph reads the graph artifact at path.
// The returned graph is never nil: a failed load yields an empty graph and an error
// wrapping entities.ErrGraphNotFound or entities.ErrGraphFormat.
func LoadGraph(store ports.GraphStore, path string) (*entities.Graph, error) {
	g, err := store.Load(path)
	if g == nil {
		g = entities.NewGraph()
	}
	if err != nil {
		return g, fmt.Errorf("loading graph: %w", err)
	}
	return g, nil
}

// Graph returns the graph the service answers from.
func (s *QueryService) Graph() *entities.Graph {
	return s.graph
}

// FindAnswer returns the best matching tuple for question.
func (s *QueryService) FindAnswer(question string) (entities.QueryResult, bool) {
	return FindAnswer(s.graph, question)
}

// Scores returns every candidate tuple with its score, in iteration order.
func (s *QueryService) Scores(question string) []ScoredResult {
	keywords := Keywords(question)
	results := s.graph.QueryResults()

	scored := make([]ScoredResult, 0, len(results))
	for _, r := range results {
		scored = append(scored, ScoredResult{Result: r, Score: Score(keywords, r.Question)})
	}
	return scored
}

// ScoredResult pairs a candidate tuple with its keyword overlap score.
type ScoredResult struct {
	Result entities.QueryResult
	Score  int
}

// FindAnswer scores every tuple of the graph by keyword overlap with its stored
// question and returns the highest scoring one. Only a score above zero can match,
// and on equal scores the tuple seen first in graph order wins.
func FindAnswer(graph *entities.Graph, question string) (entities.QueryResult, bool) {
	keywords := Keywords(question)

	var best entities.QueryResult
	found := false
	highest := 0

	for _, r := range graph.QueryResults() {
		score := Score(keywords, r.Question)
		if score > highest {
			highest = score
			best = r
			found = true
		}
	}

	return best, found
}

// Keywords lowercases question, splits it on whitespace and drops repeats.
func Keywords(question string) []string {
	fields := strings.Fields(strings.ToLower(question))

	seen := make(map[string]struct{}, len(fields))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		keywords = append(keywords, f)
	}
	return keywords
}

// Score counts the keywords that occur anywhere in the stored question, ignoring case.
// Matching is by substring, so "hurt" counts for "hurts".
func Score(keywords []string, storedQuestion string) int {
	stored := strings.ToLower(storedQuestion)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(stored, kw) {
			score++
		}
	}
	return score
}
