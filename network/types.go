// SPDX-License-Identifier: MIT
//
// Package network holds the station and line registries of a transit network
// together with its track graph, split into a mutable Builder for the load
// phase and an immutable Network for the query phase.
package network

import (
	"errors"
	"sort"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyStation indicates an empty station name.
	ErrEmptyStation = errors.New("network: station name is empty")

	// ErrEmptyLine indicates an empty line name.
	ErrEmptyLine = errors.New("network: line name is empty")

	// ErrStationNotFound indicates a station absent from the registry.
	ErrStationNotFound = errors.New("network: station not found")

	// ErrLineNotFound indicates a line absent from the registry.
	ErrLineNotFound = errors.New("network: line not found")

	// ErrBuilderFrozen indicates a Builder mutation after Build.
	ErrBuilderFrozen = errors.New("network: builder already built")
)

// Station is a named stop and the set of lines serving it.
type Station struct {
	name  string
	lines map[string]struct{}
}

func newStation(name string) *Station {
	return &Station{name: name, lines: make(map[string]struct{})}
}

// Name returns the unique station name.
func (s *Station) Name() string { return s.name }

// Lines returns the line IDs serving the station, sorted ascending.
func (s *Station) Lines() []string {
	out := make([]string, 0, len(s.lines))
	for l := range s.lines {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// HasLine reports whether line serves the station.
func (s *Station) HasLine(line string) bool {
	_, ok := s.lines[line]
	return ok
}

// IsTransfer reports whether more than one line serves the station.
func (s *Station) IsTransfer() bool { return len(s.lines) > 1 }

// Line is a named route and its stations in declaration order. The sequence
// is kept exactly as declared, including repeats; routing never reads it.
type Line struct {
	name     string
	stations []string
	segments map[[2]string]struct{}
}

// segmentKey orders a station pair so a–b and b–a share one key.
func segmentKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Name returns the unique line name.
func (l *Line) Name() string { return l.name }

// Stations returns a copy of the declared station sequence.
func (l *Line) Stations() []string {
	out := make([]string, len(l.stations))
	copy(out, l.stations)

	return out
}

// HasSegment reports whether the line declares a direct segment between a
// and b, in either direction.
func (l *Line) HasSegment(a, b string) bool {
	_, ok := l.segments[segmentKey(a, b)]
	return ok
}

// Path is an ordered sequence of distinct station names where every
// consecutive pair is adjacent. A nil or empty Path means "no path".
type Path []string

// Empty reports whether p carries no stations.
func (p Path) Empty() bool { return len(p) == 0 }

// Start returns the first station, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last station, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Stops returns the number of hops, len(p)-1, or 0 for an empty path.
func (p Path) Stops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
