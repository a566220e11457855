// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metro/core"
)

// Network is the frozen, queryable form of a transit network. All methods
// are read-only and safe for concurrent use.
type Network struct {
	stations map[string]*Station
	lines    map[string]*Line
	graph    *core.Graph
}

// Graph returns the frozen track graph. Mutations on it return core.ErrFrozen.
func (n *Network) Graph() *core.Graph { return n.graph }

// StationExists reports whether name is a registered station.
func (n *Network) StationExists(name string) bool {
	_, ok := n.stations[name]
	return ok
}

// Station returns the station called name.
func (n *Network) Station(name string) (*Station, error) {
	s, ok := n.stations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}

	return s, nil
}

// LinesOf returns the sorted line IDs serving station.
func (n *Network) LinesOf(station string) ([]string, error) {
	s, err := n.Station(station)
	if err != nil {
		return nil, err
	}

	return s.Lines(), nil
}

// Adjacent reports whether a direct segment joins a and b.
func (n *Network) Adjacent(a, b string) bool { return n.graph.HasEdge(a, b) }

// DeclaresSegment reports whether line declares a segment between a and b.
// An unknown line declares nothing.
func (n *Network) DeclaresSegment(line, a, b string) bool {
	l, ok := n.lines[line]
	return ok && l.HasSegment(a, b)
}

// Stations returns all station names sorted ascending.
func (n *Network) Stations() []string {
	out := make([]string, 0, len(n.stations))
	for name := range n.stations {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Line returns the line called name.
func (n *Network) Line(name string) (*Line, error) {
	l, ok := n.lines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLineNotFound, name)
	}

	return l, nil
}

// Lines returns all line names sorted ascending.
func (n *Network) Lines() []string {
	out := make([]string, 0, len(n.lines))
	for name := range n.lines {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// TransferStations returns the names of stations served by more than one
// line, sorted ascending.
func (n *Network) TransferStations() []string {
	var out []string
	for name, s := range n.stations {
		if s.IsTransfer() {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// Summary counts the registries and the graph.
type Summary struct {
	Stations  int
	Lines     int
	Segments  int
	Transfers int
}

// Summary returns entity counts, useful for load diagnostics.
func (n *Network) Summary() Summary {
	return Summary{
		Stations:  len(n.stations),
		Lines:     len(n.lines),
		Segments:  n.graph.EdgeCount(),
		Transfers: len(n.TransferStations()),
	}
}
