// Package bfs provides breadth-first search over a core.Graph, ignoring
// segment distances and counting hops only.
//
// What
//
//   - BFS(g, start, opts...) explores stations in non-decreasing hop count
//     from start and returns a Result holding:
//   - Order: visit sequence
//   - Depth: station → hops from start
//   - Parent: station → predecessor in the BFS tree
//   - FewestStops(g, start, end, opts...) returns a route between two
//     stations that passes the fewest intermediate stations, which is not
//     necessarily the shortest one by distance.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs in sorted order and BFS enqueues them
//	in that order, so the visit sequence and the chosen route are
//	reproducible for a given graph.
//
// Options
//
//   - WithContext(ctx)        cancellation; checked once per dequeue.
//   - WithMaxDepth(d)         stop expanding beyond d hops (0 = unlimited).
//   - WithFilterNeighbor(fn)  skip edges for which fn(curr, nbr) is false,
//     e.g. to route around a closed station.
//   - WithOnVisit(fn)         hook per visited station; an error aborts.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
