// Package ports defines interfaces for external service communication.
package ports

import (
	"github.com/ersonp/kural-core/internal/domain/entities"
)

// GraphStore persists and restores the serialized graph artifact.
type GraphStore interface {
	// Save writes the complete graph to path, replacing any existing artifact.
	Save(path string, graph *entities.Graph) error

	// Load reads the artifact at path.
	// On failure it returns an empty graph together with an error wrapping
	// entities.ErrGraphNotFound or entities.ErrGraphFormat.
	Load(path string) (*entities.Graph, error)
}
