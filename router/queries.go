package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/dfs"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/network"
)

// Route is a path with its total distance in km.
type Route struct {
	Path     network.Path
	Distance float64
}

// Found reports whether the route has any station.
func (rt Route) Found() bool { return !rt.Path.Empty() }

func (rt Route) clone() Route {
	return Route{Path: clonePath(rt.Path), Distance: rt.Distance}
}

func clonePath(p []string) network.Path {
	if p == nil {
		return nil
	}
	out := make(network.Path, len(p))
	copy(out, p)

	return out
}

func cacheKey(kind string, parts ...string) string {
	return kind + "\x00" + strings.Join(parts, "\x00")
}

// ShortestPath returns the minimum-distance route. Unknown stations and
// unreachable destinations yield an empty Route and no error.
func (r *Router) ShortestPath(from, to string) (Route, error) {
	v, err := r.cached(cacheKey("shortest", from, to), func() (interface{}, error) {
		path, d, err := dijkstra.ShortestPath(r.net.Graph(), from, to)
		if err != nil {
			return nil, err
		}
		return Route{Path: path, Distance: d}, nil
	})
	if err != nil {
		return Route{}, fmt.Errorf("router: shortest path %q→%q: %w", from, to, err)
	}

	return v.(Route).clone(), nil
}

// FewestStops returns a route with the fewest hops. Unknown stations are
// errors; an unreachable destination yields an empty Route and no error.
func (r *Router) FewestStops(from, to string) (Route, error) {
	v, err := r.cached(cacheKey("fewest", from, to), func() (interface{}, error) {
		path, err := bfs.FewestStops(r.net.Graph(), from, to)
		if err != nil {
			return nil, err
		}
		d, err := fare.Distance(r.net.Graph(), path)
		if err != nil {
			return nil, err
		}
		return Route{Path: path, Distance: d}, nil
	})
	if err != nil {
		return Route{}, fmt.Errorf("router: fewest stops %q→%q: %w", from, to, err)
	}

	return v.(Route).clone(), nil
}

// AllPaths returns every simple path between two stations, capped by
// WithMaxPaths. Complete results are cached; a cancelled run returns the
// context error and caches nothing.
func (r *Router) AllPaths(ctx context.Context, from, to string) ([]network.Path, error) {
	v, err := r.cached(cacheKey("all", from, to), func() (interface{}, error) {
		return dfs.AllPaths(r.net.Graph(), from, to,
			dfs.WithContext(ctx),
			dfs.WithMaxPaths(r.maxPaths),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("router: all paths %q→%q: %w", from, to, err)
	}

	raw := v.([][]string)
	out := make([]network.Path, len(raw))
	for i, p := range raw {
		out[i] = clonePath(p)
	}

	return out, nil
}

// Nearby lists (station, line, distance) for every station within
// maxDistance km of origin, one entry per serving line.
func (r *Router) Nearby(origin string, maxDistance float64) ([]dijkstra.Reachable, error) {
	res, err := dijkstra.Nearby(r.net.Graph(), r.net, origin, maxDistance)
	if err != nil {
		return nil, fmt.Errorf("router: nearby %q: %w", origin, err)
	}

	return res, nil
}

// Segment splits path into ride legs.
func (r *Router) Segment(path []string) ([]itinerary.Leg, error) {
	legs, err := itinerary.Segment(r.net, path)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	return legs, nil
}

// PathDistance sums the segment distances along path.
func (r *Router) PathDistance(path []string) (float64, error) {
	d, err := fare.Distance(r.net.Graph(), path)
	if err != nil {
		return 0, fmt.Errorf("router: %w", err)
	}

	return d, nil
}

// Fare prices one ride along path under t.
func (r *Router) Fare(path []string, t fare.TicketType) (int, error) {
	f, err := fare.ForPath(r.net.Graph(), path, t)
	if err != nil {
		return 0, fmt.Errorf("router: %w", err)
	}

	return f, nil
}

// PassPrice returns the purchase price of a day pass.
func (r *Router) PassPrice(t fare.TicketType) (int, error) {
	p, err := fare.PassPrice(t)
	if err != nil {
		return 0, fmt.Errorf("router: %w", err)
	}

	return p, nil
}

// TransferStations returns stations served by more than one line.
func (r *Router) TransferStations() []string { return r.net.TransferStations() }
