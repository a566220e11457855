package dfs

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// frame is one level of the explicit DFS stack: a station on the current
// path, its sorted neighbor IDs and the index of the next one to try.
type frame struct {
	id   string
	nbs  []string
	next int
}

// pathWalker encapsulates state during path enumeration.
type pathWalker struct {
	graph   *core.Graph
	opts    PathOptions
	end     string
	visited map[string]bool
	path    []string
	stack   []frame
	found   [][]string
}

// AllPaths returns every simple path from start to end.
//
// Validation order: graph, options, start, end.
// On cancellation or hook error the paths found so far are returned together
// with the error.
func AllPaths(g *core.Graph, start, end string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}
	if popts.err != nil {
		return nil, popts.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	w := &pathWalker{
		graph:   g,
		opts:    popts,
		end:     end,
		visited: make(map[string]bool),
	}
	if start == end {
		_, err := w.emit([]string{start})
		return w.found, err
	}

	if err := w.push(start); err != nil {
		return nil, err
	}
	err := w.run()

	return w.found, err
}

// push appends id to the current path and opens its frame.
func (w *pathWalker) push(id string) error {
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	w.visited[id] = true
	w.path = append(w.path, id)
	w.stack = append(w.stack, frame{id: id, nbs: nbs})

	return nil
}

// pop backtracks one level.
func (w *pathWalker) pop() {
	top := w.stack[len(w.stack)-1]
	w.visited[top.id] = false
	w.path = w.path[:len(w.path)-1]
	w.stack = w.stack[:len(w.stack)-1]
}

// run drives the stack until exhausted, cancelled, capped or aborted.
func (w *pathWalker) run() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			w.pop()
			continue
		}
		nid := top.nbs[top.next]
		top.next++

		if w.visited[nid] {
			continue
		}
		if nid == w.end {
			snap := make([]string, len(w.path)+1)
			copy(snap, w.path)
			snap[len(w.path)] = nid
			stop, err := w.emit(snap)
			if err != nil || stop {
				return err
			}
			continue // paths never pass through end
		}
		if err := w.push(nid); err != nil {
			return err
		}
	}

	return nil
}

// emit records a found path and reports whether the cap is reached.
func (w *pathWalker) emit(p []string) (bool, error) {
	if w.opts.OnPath != nil {
		hookCopy := make([]string, len(p))
		copy(hookCopy, p)
		if err := w.opts.OnPath(hookCopy); err != nil {
			return true, fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}
	w.found = append(w.found, p)

	return w.opts.MaxPaths > 0 && len(w.found) >= w.opts.MaxPaths, nil
}
