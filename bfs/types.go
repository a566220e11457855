package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start station does not exist.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the end station does not exist.
	ErrEndVertexNotFound = errors.New("bfs: end vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior.
type Option func(*Options)

// Options holds the configurable parameters of a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, stops expansion beyond that many hops.
	MaxDepth int

	// FilterNeighbor, if non-nil, must return true for an edge to be followed.
	FilterNeighbor func(curr, nbr string) bool

	// OnVisit is called when a station is dequeued; an error aborts.
	OnVisit func(id string, depth int) error

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filter and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets the Context for cancellation. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal depth.
//
//	d > 0: do not expand past d hops
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge predicate.
func WithFilterNeighbor(fn func(curr, nbr string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithOnVisit installs a per-station visit hook. A nil fn has no effect.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order is the sequence in which stations were visited.
	Order []string

	// Depth maps each reached station to its hop count from the start.
	Depth map[string]int

	// Parent maps each reached station (except the start) to its predecessor.
	Parent map[string]string
}

// PathTo reconstructs the route from the traversal start to dest.
// It returns nil if dest was not reached.
func (r *Result) PathTo(dest string) []string {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path
}
