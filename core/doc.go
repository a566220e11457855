// Package core provides the undirected, distance-weighted station graph that
// every routing algorithm in metro runs on.
//
// The Graph G = (V,E) is deliberately narrow compared to a general-purpose
// graph library:
//
//   - Undirected only: AddEdge(a,b,d) stores both a→b and b→a with weight d.
//   - Positive real weights: track distance in kilometres, d > 0.
//   - One weight per unordered pair: re-declaring a pair overwrites the
//     stored weight (MergeLast, the default) or keeps the smaller one
//     (MergeMin, via WithMinWeight).
//   - No self-loops: AddEdge(v,v,d) → ErrLoopNotAllowed.
//   - Deterministic iteration: Vertices(), Neighbors(), NeighborIDs() all
//     return results sorted by vertex ID.
//   - Two-phase lifecycle: mutate while loading, then Freeze(). A frozen
//     graph rejects every mutation with ErrFrozen and is safe to share
//     between any number of concurrent readers.
//
// Storage is a nested map adjacency[from][to] = distance, guarded by a single
// sync.RWMutex.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	AddEdge(from, to string, d float64) error     // O(1)
//	HasVertex(id string) bool                     // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Weight(from, to string) (float64, error)      // O(1)
//	Neighbors(id string) ([]Neighbor, error)      // O(d·log d)
//	NeighborIDs(id string) ([]string, error)      // O(d·log d)
//	Vertices() []string                           // O(V·log V)
//	VertexCount(), EdgeCount() int                // O(1)
//	Freeze(), Frozen()                            // O(1)
//	Clone() *Graph                                // O(V+E), result is unfrozen
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – the two vertices are not adjacent
//	ErrBadWeight      – distance ≤ 0, NaN or +Inf
//	ErrLoopNotAllowed – from == to
//	ErrFrozen         – mutation after Freeze
package core
