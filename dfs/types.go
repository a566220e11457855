// Package dfs defines options and errors for simple-path enumeration.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start station does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the end station does not exist.
	ErrEndVertexNotFound = errors.New("dfs: end vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of AllPaths.
type Option func(*PathOptions)

// PathOptions holds configurable parameters for path enumeration.
type PathOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if > 0, stops the search once that many paths are found.
	MaxPaths int

	// OnPath, if non-nil, receives every found path (a private copy).
	// Returning an error aborts the search with that error.
	OnPath func(path []string) error

	// err records an invalid option, surfaced by AllPaths.
	err error
}

// DefaultOptions returns PathOptions with a background context, no path cap
// and no hook.
func DefaultOptions() PathOptions {
	return PathOptions{
		Ctx:      context.Background(),
		MaxPaths: 0,
		OnPath:   nil,
	}
}

// WithContext sets the Context for the search. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of returned paths.
//
//	n > 0: stop after n paths
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *PathOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithOnPath installs fn as a per-path hook.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *PathOptions) {
		o.OnPath = fn
	}
}
