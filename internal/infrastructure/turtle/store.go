// Package turtle stores the kural graph artifact as an RDF Turtle document.
package turtle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/knakk/rdf"

	"github.com/ersonp/kural-core/internal/domain/entities"
)

// Store implements ports.GraphStore on Turtle files.
type Store struct{}

// NewStore creates a new Turtle store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the graph to path as Turtle.
func (s *Store) Save(path string, graph *entities.Graph) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating graph file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing graph file: %w", cerr)
		}
	}()

	if err := Encode(f, graph); err != nil {
		return fmt.Errorf("writing graph file: %w", err)
	}
	return nil
}

// Load reads the Turtle artifact at path. A failed load still returns an empty graph.
func (s *Store) Load(path string) (*entities.Graph, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.NewGraph(), fmt.Errorf("%w: %s", entities.ErrGraphNotFound, path)
	}
	if err != nil {
		return entities.NewGraph(), fmt.Errorf("%w: %w", entities.ErrGraphNotFound, err)
	}
	defer f.Close()

	graph, err := Decode(f)
	if err != nil {
		return entities.NewGraph(), fmt.Errorf("%s: %w", path, err)
	}
	return graph, nil
}

// Encode writes every entry of the graph as Turtle triples.
func Encode(w io.Writer, graph *entities.Graph) error {
	enc := rdf.NewTripleEncoder(w, rdf.Turtle)

	for _, entry := range graph.Entries() {
		triples, err := entryTriples(entry)
		if err != nil {
			return fmt.Errorf("entry %q: %w", entry.ID, err)
		}
		for _, t := range triples {
			if err := enc.Encode(t); err != nil {
				return fmt.Errorf("encoding entry %q: %w", entry.ID, err)
			}
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing encoder: %w", err)
	}
	return nil
}

// Decode parses a Turtle document into a graph.
// Entries keep the order in which their subjects first appear.
func Decode(r io.Reader) (*entities.Graph, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	acc := newAccumulator()

	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrGraphFormat, err)
		}
		if err := acc.add(t); err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrGraphFormat, err)
		}
	}

	return acc.graph(), nil
}
