package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metro/core"
)

// ShortestPath returns the minimum-distance station sequence from start to
// end and its total distance.
//
// A missing start or end station and an unreachable end are not errors:
// both yield a nil path, which callers report themselves. start == end
// yields the single-station path with distance 0.
//
// Errors:
//   - ErrNilGraph if g is nil.
func ShortestPath(g *core.Graph, start, end string) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, 0, nil
	}
	if start == end {
		return []string{start}, 0, nil
	}

	res, err := Dijkstra(g, Source(start), WithTarget(end), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	d := res.Dist[end]
	if math.IsInf(d, 1) {
		return nil, 0, nil
	}

	path := PathTo(res.Prev, start, end)
	if path == nil {
		return nil, 0, nil
	}

	return path, d, nil
}

// PathTo rebuilds the source→target path from a predecessor map. It returns
// nil when the chain does not lead back to source, so a disconnected target
// never produces a truncated path.
func PathTo(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	var rev []string
	seen := make(map[string]bool)
	for at := target; ; {
		if seen[at] {
			return nil // corrupt map, cycle
		}
		seen[at] = true
		rev = append(rev, at)
		if at == source {
			break
		}
		p, ok := prev[at]
		if !ok {
			return nil
		}
		at = p
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// Nearby lists every station other than origin whose shortest distance from
// origin is at most maxDistance, once per line serving it, in the order the
// stations were settled. Lines of one station appear in sorted order.
// Stations with no line association produce no entries.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound (naming origin) if origin is not in g.
//   - ErrBadMaxDistance if maxDistance is not > 0.
//   - lookup errors for a station reached in g but unknown to lines.
func Nearby(g *core.Graph, lines LineLookup, origin string, maxDistance float64) ([]Reachable, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(origin) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, origin)
	}
	if !(maxDistance > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadMaxDistance, maxDistance)
	}

	res, err := Dijkstra(g, Source(origin), WithMaxDistance(maxDistance))
	if err != nil {
		return nil, err
	}

	var out []Reachable
	for _, st := range res.Order {
		if st == origin {
			continue
		}
		ls, err := lines.LinesOf(st)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: lines of %q: %w", st, err)
		}
		d := res.Dist[st]
		for _, l := range ls {
			out = append(out, Reachable{Station: st, Line: l, Distance: d})
		}
	}

	return out, nil
}
