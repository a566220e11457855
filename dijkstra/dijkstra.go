// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// station graph, plus the two queries routing needs on top of it:
// ShortestPath (one station pair) and Nearby (bounded reachability).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) heap entries worst case under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-distance heap entries pop in push order (sequence tie-break), and
//     neighbors are relaxed in ID order, so every run is reproducible.
//   - Relaxation is strict (<): the first predecessor found at a given distance is kept.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/metro/core"
)

// Dijkstra computes shortest distances from Options.Source over g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. g must contain Target when one is set (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Prev: r.prev, Order: r.order}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	order   []string
	pq      nodePQ
	seq     uint64 // push counter for stable tie-breaking
}

// init sets dist[v]=+Inf for every vertex and pushes Source at distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly settles the closest unsettled vertex.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has just been settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue // stale entry
		}
		// Heap order means every remaining entry is at least as far.
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		if u == r.options.Target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		newDist := r.dist[u] + nb.Distance
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist
		if r.prev != nil {
			r.prev[nb.ID] = u
		}
		r.push(nb.ID, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex, its tentative distance, and the push
// sequence number used to order equal distances.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
