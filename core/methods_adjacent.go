// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors/NeighborIDs) and the freeze/clone lifecycle.
// Determinism:
//   - Neighbors and NeighborIDs are sorted by neighbor ID asc, so every
//     algorithm built on them expands vertices in a fixed order.

package core

import "sort"

// Neighbors returns every vertex adjacent to id together with the connecting
// distance, sorted by neighbor ID. A vertex without edges yields an empty,
// non-nil slice.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d·log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	bucket := g.adjacency[id]
	out := make([]Neighbor, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Neighbor{ID: to, Distance: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Propagates the errors of Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Freeze ends the build phase: every later AddVertex/AddEdge returns
// ErrFrozen. Freeze is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Clone returns a deep, unfrozen copy of g with the same merge policy.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithMergePolicy(g.merge))
	c.edgeCount = g.edgeCount
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, bucket := range g.adjacency {
		inner := make(map[string]float64, len(bucket))
		for to, w := range bucket {
			inner[to] = w
		}
		c.adjacency[from] = inner
	}

	return c
}
