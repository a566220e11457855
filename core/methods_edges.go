// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/EdgeCount.
// Invariants:
//   - adjacency[a][b] == adjacency[b][a] for every stored pair.
//   - Every stored weight is finite and > 0.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge stores the undirected edge {from,to} with the given distance,
// creating both endpoints if needed.
//
// If the pair is already connected, the stored weight is replaced (MergeLast)
// or lowered (MergeMin); EdgeCount does not change.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Lock, reject if frozen.
//  3. Ensure both endpoints.
//  4. Merge the weight into adjacency[from][to] and its mirror.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if !validWeight(distance) {
		return fmt.Errorf("%w: %s–%s distance=%v", ErrBadWeight, from, to, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	old, exists := g.adjacency[from][to]
	if !exists {
		g.edgeCount++
	} else if g.merge == MergeMin && old <= distance {
		return nil // keep the shorter segment
	}
	g.adjacency[from][to] = distance
	g.adjacency[to][from] = distance

	return nil
}

// validWeight reports whether d is usable as a track distance.
func validWeight(d float64) bool {
	return d > 0 && !math.IsInf(d, 1) // NaN fails d > 0
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the distance of the edge {from,to}.
// Returns ErrVertexNotFound if either endpoint is missing and ErrEdgeNotFound
// if both exist but are not adjacent.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// EdgeCount returns the number of unordered adjacent pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// MergePolicy returns the construction-time merge rule.
func (g *Graph) MergePolicy() MergePolicy {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.merge
}
