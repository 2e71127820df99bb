// Package mocks provides test doubles for the domain ports.
package mocks

import (
	"github.com/ersonp/kural-core/internal/domain/entities"
)

// GraphStore is a mock implementation of ports.GraphStore.
type GraphStore struct {
	Graphs  map[string]*entities.Graph
	SaveErr error
	LoadErr error
}

// NewGraphStore creates a new mock GraphStore.
func NewGraphStore() *GraphStore {
	return &GraphStore{
		Graphs: make(map[string]*entities.Graph),
	}
}

// Save records the graph under path.
func (m *GraphStore) Save(path string, graph *entities.Graph) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Graphs == nil {
		m.Graphs = make(map[string]*entities.Graph)
	}
	m.Graphs[path] = graph
	return nil
}

// Load returns the graph saved under path, or an empty graph with ErrGraphNotFound.
func (m *GraphStore) Load(path string) (*entities.Graph, error) {
	if m.LoadErr != nil {
		return entities.NewGraph(), m.LoadErr
	}
	g, ok := m.Graphs[path]
	if !ok {
		return entities.NewGraph(), entities.ErrGraphNotFound
	}
	return g, nil
}
