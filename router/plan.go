package router

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/network"
)

// ErrNoRoute is returned by Plan when the destination is unreachable.
var ErrNoRoute = errors.New("router: no route")

// Plan is a complete journey answer: the shortest route, its ride legs,
// the fare under the router's default ticket and a quote under every
// ticket type.
type Plan struct {
	Route  Route
	Legs   []itinerary.Leg
	Ticket fare.TicketType
	Fare   int
	Quote  fare.Quote
}

// Transfers returns the number of line changes.
func (p *Plan) Transfers() int { return itinerary.Transfers(p.Legs) }

// Plan builds the journey for the shortest route from → to. Unknown
// stations return network.ErrStationNotFound; an unreachable destination
// returns ErrNoRoute. A plan from a station to itself has no legs and
// costs nothing.
func (r *Router) Plan(from, to string) (*Plan, error) {
	for _, s := range [2]string{from, to} {
		if !r.net.StationExists(s) {
			return nil, fmt.Errorf("router: plan: %w: %q", network.ErrStationNotFound, s)
		}
	}
	rt, err := r.ShortestPath(from, to)
	if err != nil {
		return nil, err
	}
	if !rt.Found() {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoRoute, from, to)
	}

	return r.planFor(rt, r.ticket)
}

func (r *Router) planFor(rt Route, t fare.TicketType) (*Plan, error) {
	p := &Plan{Route: rt, Ticket: t}
	q, err := fare.QuoteFor(r.net.Graph(), rt.Path)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	p.Quote = q
	if p.Fare, err = fare.Calculate(q.Distance, t); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	if len(rt.Path) < 2 {
		return p, nil
	}
	if p.Legs, err = r.Segment(rt.Path); err != nil {
		return nil, err
	}

	return p, nil
}

// Alternative is one candidate route with its price under a ticket type.
type Alternative struct {
	Path     network.Path
	Distance float64
	Fare     int
}

// Alternatives lists every simple route from → to, priced under t and
// ordered by distance, then by number of stations.
func (r *Router) Alternatives(ctx context.Context, from, to string, t fare.TicketType) ([]Alternative, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("router: %w: %d", fare.ErrUnknownTicketType, int(t))
	}
	paths, err := r.AllPaths(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]Alternative, 0, len(paths))
	for _, p := range paths {
		d, err := r.PathDistance(p)
		if err != nil {
			return nil, err
		}
		f, err := fare.Calculate(d, t)
		if err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
		out = append(out, Alternative{Path: p, Distance: d, Fare: f})
	}
	sortByDistance(out)

	return out, nil
}

// sortByDistance orders routes by distance, then hops, then path text.
func sortByDistance(rs []Alternative) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if len(a.Path) != len(b.Path) {
			return len(a.Path) < len(b.Path)
		}
		return strings.Join(a.Path, "\x00") < strings.Join(b.Path, "\x00")
	})
}
