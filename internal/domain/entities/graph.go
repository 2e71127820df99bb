package entities

// Graph is the in-memory graph artifact: entries in insertion order with lookup by id.
// Iteration order is insertion order, which makes first-seen tie breaks reproducible.
// A Graph is not safe for concurrent mutation; once built or loaded it is only read.
type Graph struct {
	entries []Entry
	index   map[string]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// Add inserts an entry. An entry with an id already present replaces the earlier one
// and keeps its position.
func (g *Graph) Add(entry Entry) {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if i, ok := g.index[entry.ID]; ok {
		g.entries[i] = entry
		return
	}
	g.index[entry.ID] = len(g.entries)
	g.entries = append(g.entries, entry)
}

// Get returns the entry with the given id.
func (g *Graph) Get(id string) (Entry, bool) {
	if g == nil {
		return Entry{}, false
	}
	i, ok := g.index[id]
	if !ok {
		return Entry{}, false
	}
	return g.entries[i], true
}

// Len returns the number of entries.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.entries)
}

// Entries returns a copy of all entries in insertion order.
func (g *Graph) Entries() []Entry {
	if g == nil {
		return nil
	}
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// QueryResults returns the tuple of every entry that has both a question and an answer,
// in insertion order.
func (g *Graph) QueryResults() []QueryResult {
	if g == nil {
		return nil
	}
	results := make([]QueryResult, 0, len(g.entries))
	for _, e := range g.entries {
		if !e.HasQA() {
			continue
		}
		results = append(results, e.Result())
	}
	return results
}
