// Package dfs enumerates every simple path between two stations of a
// core.Graph with an iterative depth-first search and backtracking.
//
// What:
//
//   - AllPaths(g, start, end, opts...): complete, cycle-free enumeration.
//     Each returned path starts at start, ends at end, repeats no station
//     and only uses graph edges. start == end yields [[start]].
//
// How:
//
//   - An explicit frame stack replaces recursion, so stack usage is bounded
//     by heap memory rather than goroutine stack depth.
//   - A visited set plus the current path are pushed/popped together with
//     the frames (backtracking).
//   - Neighbors are expanded in ID order, so the result order is stable for
//     a given graph; callers must still treat it as unordered.
//
// Cost:
//
//   - Exponential in general: a graph can hold O(n!) simple paths. This is
//     fine for metro-sized networks (tens of stations between branch points)
//     but not for dense graphs. WithMaxPaths and WithContext bound a run.
//
// Options:
//
//   - WithContext(ctx)   cancellation; checked once per expansion step.
//   - WithMaxPaths(n)    stop after n paths (0 = unlimited, the default).
//   - WithOnPath(fn)     hook per found path; an error aborts the run.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start station not in graph
//   - ErrEndVertexNotFound    end station not in graph
//   - ErrOptionViolation      invalid option value
//   - context errors and hook errors, wrapped
package dfs
