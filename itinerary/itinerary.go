// SPDX-License-Identifier: MIT

package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilTopology is returned when Segment receives a nil Topology.
	ErrNilTopology = errors.New("itinerary: topology is nil")

	// ErrPathTooShort indicates a path with fewer than two stations.
	ErrPathTooShort = errors.New("itinerary: path needs at least two stations")

	// ErrNotAdjacent indicates a consecutive pair with no segment between them.
	ErrNotAdjacent = errors.New("itinerary: stations are not adjacent")

	// ErrNoCommonLine indicates adjacent stations sharing no line, which only
	// happens for segments loaded without a line.
	ErrNoCommonLine = errors.New("itinerary: adjacent stations share no line")
)

// Topology is the read-only view Segment needs. *network.Network
// satisfies it.
type Topology interface {
	LinesOf(station string) ([]string, error)
	Adjacent(a, b string) bool
	DeclaresSegment(line, a, b string) bool
}

// Leg is one ride on a single line.
type Leg struct {
	Line  string
	From  string
	To    string
	Stops int // hops travelled on this leg
}

func (l Leg) String() string {
	return fmt.Sprintf("%s: %s → %s (%d stops)", l.Line, l.From, l.To, l.Stops)
}

// Segment returns the ride legs of path in travel order.
func Segment(topo Topology, path []string) ([]Leg, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPathTooShort, len(path))
	}

	var (
		legs []Leg
		cur  Leg
	)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		line, err := connectingLine(topo, a, b)
		if err != nil {
			return nil, err
		}
		if cur.Stops > 0 && line != cur.Line {
			legs = append(legs, cur)
			cur = Leg{}
		}
		if cur.Stops == 0 {
			cur = Leg{Line: line, From: a}
		}
		cur.To = b
		cur.Stops++
	}

	return append(legs, cur), nil
}

// connectingLine picks the line a hop a→b rides on.
func connectingLine(topo Topology, a, b string) (string, error) {
	linesA, err := topo.LinesOf(a)
	if err != nil {
		return "", fmt.Errorf("itinerary: lines of %q: %w", a, err)
	}
	linesB, err := topo.LinesOf(b)
	if err != nil {
		return "", fmt.Errorf("itinerary: lines of %q: %w", b, err)
	}
	if !topo.Adjacent(a, b) {
		return "", fmt.Errorf("%w: %q–%q", ErrNotAdjacent, a, b)
	}

	served := make(map[string]bool, len(linesB))
	for _, l := range linesB {
		served[l] = true
	}
	var fallback string
	for _, l := range linesA { // sorted
		if !served[l] {
			continue
		}
		if topo.DeclaresSegment(l, a, b) {
			return l, nil
		}
		if fallback == "" {
			fallback = l
		}
	}
	if fallback == "" {
		return "", fmt.Errorf("%w: %q–%q", ErrNoCommonLine, a, b)
	}

	return fallback, nil
}

// Transfers returns the number of line changes across legs.
func Transfers(legs []Leg) int {
	if len(legs) == 0 {
		return 0
	}
	return len(legs) - 1
}

// Describe renders legs as a plain-text journey guide: one "Take" line per
// leg followed by the number of stations passed, endpoints included.
func Describe(legs []Leg) string {
	if len(legs) == 0 {
		return "No journey.\n"
	}

	var sb strings.Builder
	stations := 1
	for _, l := range legs {
		fmt.Fprintf(&sb, "Take %s from %s to %s\n", l.Line, l.From, l.To)
		stations += l.Stops
	}
	fmt.Fprintf(&sb, "%d stations, %d transfers\n", stations, Transfers(legs))

	return sb.String()
}
