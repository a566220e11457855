// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// BuilderOption configures a Builder before the first segment is added.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	merge core.MergePolicy
}

// WithShortestSegment keeps the smallest distance when two lines declare
// the same station pair. Without it the last declaration wins.
func WithShortestSegment() BuilderOption {
	return func(c *builderConfig) { c.merge = core.MergeMin }
}

// WithMergePolicy selects the merge rule for repeated station pairs.
func WithMergePolicy(p core.MergePolicy) BuilderOption {
	return func(c *builderConfig) { c.merge = p }
}

// Builder accumulates stations, lines and segments during the load phase.
// It is not safe for concurrent use; Build hands its state to a Network and
// turns every further mutation into ErrBuilderFrozen.
type Builder struct {
	stations map[string]*Station
	lines    map[string]*Line
	graph    *core.Graph

	current string // last declared line, "" if none yet
	built   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	cfg := builderConfig{merge: core.MergeLast}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		stations: make(map[string]*Station),
		lines:    make(map[string]*Line),
		graph:    core.NewGraph(core.WithMergePolicy(cfg.merge)),
	}
}

// AddStation registers name if absent. Idempotent.
func (b *Builder) AddStation(name string) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if name == "" {
		return ErrEmptyStation
	}
	if _, ok := b.stations[name]; ok {
		return nil
	}
	if err := b.graph.AddVertex(name); err != nil {
		return fmt.Errorf("network: add station %q: %w", name, err)
	}
	b.stations[name] = newStation(name)

	return nil
}

// AddLineMembership records that line serves station, registering both if
// needed. Idempotent.
func (b *Builder) AddLineMembership(station, line string) error {
	if line == "" {
		return ErrEmptyLine
	}
	if err := b.AddStation(station); err != nil {
		return err
	}
	b.ensureLine(line)
	b.stations[station].lines[line] = struct{}{}

	return nil
}

// DeclareLine registers line and makes it the implicit line for
// AddSegmentOnCurrentLine.
func (b *Builder) DeclareLine(line string) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if line == "" {
		return ErrEmptyLine
	}
	b.ensureLine(line)
	b.current = line

	return nil
}

// CurrentLine returns the last declared line, or "" if none.
func (b *Builder) CurrentLine() string { return b.current }

func (b *Builder) ensureLine(line string) *Line {
	l, ok := b.lines[line]
	if !ok {
		l = &Line{name: line, segments: make(map[[2]string]struct{})}
		b.lines[line] = l
	}

	return l
}

// AddSegment registers one track segment of line between a and b:
// both stations, both memberships, both entries of the line's station
// sequence and the symmetric edge. An empty line records stations and edge
// without any line association.
func (b *Builder) AddSegment(line, a, bName string, distance float64) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if a == "" || bName == "" {
		return ErrEmptyStation
	}
	// The graph validates first, so a rejected segment registers nothing.
	if err := b.graph.AddEdge(a, bName, distance); err != nil {
		return fmt.Errorf("network: segment %s–%s: %w", a, bName, err)
	}
	for _, s := range [2]string{a, bName} {
		if _, ok := b.stations[s]; !ok {
			b.stations[s] = newStation(s)
		}
	}
	if line == "" {
		return nil
	}

	l := b.ensureLine(line)
	l.stations = append(l.stations, a, bName)
	l.segments[segmentKey(a, bName)] = struct{}{}
	b.stations[a].lines[line] = struct{}{}
	b.stations[bName].lines[line] = struct{}{}

	return nil
}

// AddSegmentOnCurrentLine is AddSegment with the last declared line.
func (b *Builder) AddSegmentOnCurrentLine(a, bName string, distance float64) error {
	return b.AddSegment(b.current, a, bName, distance)
}

// Build freezes the collected topology and returns it as a Network.
// The Builder cannot be reused afterwards.
func (b *Builder) Build() (*Network, error) {
	if b.built {
		return nil, ErrBuilderFrozen
	}
	b.built = true
	b.graph.Freeze()

	return &Network{
		stations: b.stations,
		lines:    b.lines,
		graph:    b.graph,
	}, nil
}
