// Package netgen generates synthetic transit networks for benchmarks and
// property tests.
//
// Each Constructor adds stations and segments to a network.Builder; Build
// applies them in order, so shapes can be combined (a Grid crossed by a
// Ring shares every station whose ID coincides). Segment distances come
// from a seeded distance function and are reproducible for a given seed.
package netgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/metro/network"
)

// ErrTooFewStations indicates a shape below its minimum size.
var ErrTooFewStations = errors.New("netgen: too few stations")

const (
	defaultSeed = 1
	gridIDFmt   = "%d,%d" // "r,c"
	lineIDFmt   = "%s/%d"
)

// Constructor adds one shape to b.
type Constructor func(b *network.Builder, cfg *config) error

type config struct {
	rng        *rand.Rand
	distanceFn func(*rand.Rand) float64
}

// Option configures Build.
type Option func(*config)

// WithSeed seeds the distance generator.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDistanceFn sets the segment distance generator. It must return
// values > 0.
func WithDistanceFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.distanceFn = fn
		}
	}
}

// UniformKm draws distances uniformly from [min, max).
func UniformKm(min, max float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 { return min + r.Float64()*(max-min) }
}

// Build applies every constructor to a fresh Builder and returns the
// frozen network.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	cfg := &config{
		rng:        rand.New(rand.NewSource(defaultSeed)),
		distanceFn: UniformKm(0.8, 3.5),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	b := network.NewBuilder()
	for _, c := range cons {
		if err := c(b, cfg); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Line adds a straight line of n stations named "<name>/0".."<name>/n-1".
func Line(name string, n int) Constructor {
	return func(b *network.Builder, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Line %q: n=%d (must be ≥ 2): %w", name, n, ErrTooFewStations)
		}
		for i := 1; i < n; i++ {
			u, v := fmt.Sprintf(lineIDFmt, name, i-1), fmt.Sprintf(lineIDFmt, name, i)
			if err := b.AddSegment(name, u, v, cfg.distanceFn(cfg.rng)); err != nil {
				return fmt.Errorf("Line %q: %w", name, err)
			}
		}
		return nil
	}
}

// Ring adds a circular line over the given station IDs in order, closing
// back to the first.
func Ring(name string, stations ...string) Constructor {
	return func(b *network.Builder, cfg *config) error {
		if len(stations) < 3 {
			return fmt.Errorf("Ring %q: n=%d (must be ≥ 3): %w", name, len(stations), ErrTooFewStations)
		}
		for i := range stations {
			u, v := stations[i], stations[(i+1)%len(stations)]
			if err := b.AddSegment(name, u, v, cfg.distanceFn(cfg.rng)); err != nil {
				return fmt.Errorf("Ring %q: %w", name, err)
			}
		}
		return nil
	}
}

// Grid adds a rows×cols lattice of stations "r,c". Row r runs on line
// "H<r>" and column c on line "V<c>", so every station is a transfer.
func Grid(rows, cols int) Constructor {
	return func(b *network.Builder, cfg *config) error {
		if rows < 2 || cols < 2 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 2): %w", rows, cols, ErrTooFewStations)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := b.AddSegment(fmt.Sprintf("H%d", r), u, GridID(r, c+1), cfg.distanceFn(cfg.rng)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := b.AddSegment(fmt.Sprintf("V%d", c), u, GridID(r+1, c), cfg.distanceFn(cfg.rng)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}
		return nil
	}
}

// GridID returns the station ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
