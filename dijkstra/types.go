// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the station graph.
//
// Options:
//
//	– Source:       ID of the starting station (must be non-empty and present).
//	– Target:       optional station; the search stops once it is settled.
//	– ReturnPath:   if true, the Result carries the predecessor map.
//	– MaxDistance:  optional budget; stations farther than this are never expanded.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target station does not exist.
//	– ErrBadMaxDistance  if a distance budget is negative, NaN or, for Nearby, not > 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced station is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates an unusable distance budget.
	ErrBadMaxDistance = errors.New("dijkstra: max distance must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance defaults to +Inf (no budget).
type Options struct {
	Source      string  // The ID of the source vertex
	Target      string  // Optional early-exit vertex
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum settled distance to expand
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the search as soon as id is settled. Distances of
// vertices not settled by then are tentative.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a distance budget. Vertices whose shortest distance
// exceeds it are neither settled nor expanded.
// A negative or NaN budget panics with ErrBadMaxDistance, as invalid option
// values are programming errors.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of one Dijkstra run.
type Result struct {
	// Dist maps every vertex to its best known distance from Source;
	// +Inf for vertices never reached.
	Dist map[string]float64

	// Prev maps a reached vertex to its predecessor on one shortest path.
	// Source and unreached vertices are absent. Nil unless ReturnPath.
	Prev map[string]string

	// Order lists vertices in the order their distance became final,
	// starting with Source.
	Order []string
}

// Settled reports whether id's distance was finalized during the run.
func (r *Result) Settled(id string) bool {
	for _, v := range r.Order {
		if v == id {
			return true
		}
	}

	return false
}

// Reachable is one (station, line, distance) entry of a Nearby query.
type Reachable struct {
	Station  string
	Line     string
	Distance float64
}

// LineLookup resolves the lines serving a station. *network.Network
// implements it.
type LineLookup interface {
	LinesOf(station string) ([]string, error)
}
