// SPDX-License-Identifier: MIT
//
// Package core defines the Graph type, its options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested vertex pair is not adjacent.
//	ErrBadWeight      - distance is not a finite positive number.
//	ErrLoopNotAllowed - both endpoints of an edge are the same vertex.
//	ErrFrozen         - mutation attempted on a frozen graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that two vertices are not directly connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a distance that is zero, negative, NaN or +Inf.
	ErrBadWeight = errors.New("core: distance must be a finite positive number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// MergePolicy decides which weight survives when the same unordered vertex
// pair is declared more than once.
type MergePolicy int

const (
	// MergeLast keeps the most recently declared weight.
	MergeLast MergePolicy = iota

	// MergeMin keeps the smallest declared weight.
	MergeMin
)

// String returns a stable lowercase name for the policy.
func (p MergePolicy) String() string {
	switch p {
	case MergeLast:
		return "last"
	case MergeMin:
		return "min"
	default:
		return "unknown"
	}
}

// Neighbor is one adjacency entry of a vertex: the adjacent vertex ID and
// the distance of the connecting edge.
type Neighbor struct {
	// ID is the adjacent vertex.
	ID string

	// Distance is the edge weight; always > 0.
	Distance float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMinWeight makes repeated declarations of the same pair keep the
// smallest weight instead of the last one.
func WithMinWeight() GraphOption {
	return func(g *Graph) { g.merge = MergeMin }
}

// WithMergePolicy sets the merge policy explicitly.
func WithMergePolicy(p MergePolicy) GraphOption {
	return func(g *Graph) { g.merge = p }
}

// Graph is an undirected weighted graph over string vertex IDs.
//
// mu guards every field below it. After Freeze, readers still take the read
// lock, but no writer can ever contend for it.
type Graph struct {
	mu sync.RWMutex

	merge  MergePolicy // weight merge rule for repeated pairs
	frozen bool        // set once by Freeze, never cleared

	edgeCount int                 // number of unordered pairs
	vertices  map[string]struct{} // vertex ID set

	// adjacency[from][to] = distance, mirrored for to→from.
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		merge:     MergeLast,
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
