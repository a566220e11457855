package router_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/network"
	"github.com/katalvlaran/metro/router"
)

// buildNetwork returns L1: A–B=3, B–C=5; L2: A–C=10, C–D=2; L3: X–Y=1.
func buildNetwork(t *testing.T) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	require.NoError(t, b.AddSegment("L1", "A", "B", 3))
	require.NoError(t, b.AddSegment("L1", "B", "C", 5))
	require.NoError(t, b.AddSegment("L2", "A", "C", 10))
	require.NoError(t, b.AddSegment("L2", "C", "D", 2))
	require.NoError(t, b.AddSegment("L3", "X", "Y", 1))
	n, err := b.Build()
	require.NoError(t, err)

	return n
}

func newRouter(t *testing.T, opts ...router.Option) *router.Router {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r, err := router.New(buildNetwork(t), append([]router.Option{router.WithLogger(quiet)}, opts...)...)
	require.NoError(t, err)

	return r
}

func TestNew_Errors(t *testing.T) {
	_, err := router.New(nil)
	assert.ErrorIs(t, err, router.ErrNilNetwork)

	_, err = router.New(buildNetwork(t), router.WithDefaultTicket(fare.TicketType(42)))
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)

	_, err = router.New(buildNetwork(t), router.WithMaxPaths(-1))
	assert.Error(t, err)
}

func TestShortestPath(t *testing.T) {
	r := newRouter(t)

	rt, err := r.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, network.Path{"A", "B", "C"}, rt.Path)
	assert.InDelta(t, 8.0, rt.Distance, 1e-9)

	// cached results are handed out as copies
	rt.Path[0] = "mutated"
	again, err := r.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, network.Path{"A", "B", "C"}, again.Path)

	rt, err = r.ShortestPath("A", "A")
	require.NoError(t, err)
	assert.Equal(t, network.Path{"A"}, rt.Path)

	for _, pair := range [][2]string{{"A", "Y"}, {"A", "Nowhere"}} {
		rt, err = r.ShortestPath(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, rt.Found(), "%v", pair)
	}
}

func TestFewestStops(t *testing.T) {
	r := newRouter(t, router.WithCacheSize(0))

	rt, err := r.FewestStops("A", "C")
	require.NoError(t, err)
	assert.Equal(t, network.Path{"A", "C"}, rt.Path)
	assert.InDelta(t, 10.0, rt.Distance, 1e-9)

	rt, err = r.FewestStops("A", "X")
	require.NoError(t, err)
	assert.False(t, rt.Found())

	_, err = r.FewestStops("Z", "A")
	assert.True(t, router.IsNotFound(err))
}

func TestAllPaths(t *testing.T) {
	r := newRouter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.AllPaths(ctx, "A", "D")
	assert.ErrorIs(t, err, context.Canceled)

	paths, err := r.AllPaths(context.Background(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []network.Path{{"A", "B", "C", "D"}, {"A", "C", "D"}}, paths)

	capped := newRouter(t, router.WithMaxPaths(1))
	paths, err = capped.AllPaths(context.Background(), "A", "D")
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = r.AllPaths(context.Background(), "A", "Nowhere")
	assert.True(t, router.IsNotFound(err))
}

func TestNearby(t *testing.T) {
	r := newRouter(t)

	got, err := r.Nearby("A", 3.5)
	require.NoError(t, err)
	assert.Equal(t, []dijkstra.Reachable{{Station: "B", Line: "L1", Distance: 3}}, got)

	_, err = r.Nearby("A", 0)
	assert.True(t, router.IsInvalidArgument(err))

	_, err = r.Nearby("Nowhere", 1)
	assert.True(t, router.IsNotFound(err))
}

func TestSegmentAndFare(t *testing.T) {
	r := newRouter(t)
	path := []string{"A", "B", "C", "D"}

	legs, err := r.Segment(path)
	require.NoError(t, err)
	assert.Equal(t, []itinerary.Leg{
		{Line: "L1", From: "A", To: "C", Stops: 2},
		{Line: "L2", From: "C", To: "D", Stops: 1},
	}, legs)

	d, err := r.PathDistance(path)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, d, 1e-9)

	f, err := r.Fare(path, fare.SingleJourney)
	require.NoError(t, err)
	assert.Equal(t, 4, f)

	f, err = r.Fare(path, fare.SevenDayPass)
	require.NoError(t, err)
	assert.Zero(t, f)

	f, err = r.Fare([]string{"A"}, fare.StoredValue)
	require.NoError(t, err)
	assert.Zero(t, f)

	p, err := r.PassPrice(fare.ThreeDayPass)
	require.NoError(t, err)
	assert.Equal(t, 45, p)

	assert.Equal(t, []string{"A", "C"}, r.TransferStations())
}

func TestErrorClasses(t *testing.T) {
	r := newRouter(t)

	_, err := r.Segment([]string{"A", "D"})
	assert.True(t, router.IsInconsistent(err))
	assert.False(t, router.IsNotFound(err))

	_, err = r.PathDistance([]string{"B", "D"})
	assert.True(t, router.IsInconsistent(err))

	_, err = r.Fare([]string{"A", "B"}, fare.TicketType(99))
	assert.True(t, router.IsInvalidArgument(err))

	_, err = r.PassPrice(fare.SingleJourney)
	assert.True(t, router.IsInvalidArgument(err))

	_, err = r.Segment([]string{"A"})
	assert.True(t, router.IsInvalidArgument(err))

	assert.False(t, router.IsNotFound(nil))
}

func TestErrorClasses_UnknownStationInPath(t *testing.T) {
	r := newRouter(t)
	path := []string{"A", "Nowhere"}

	_, err := r.Fare(path, fare.SingleJourney)
	assert.True(t, router.IsNotFound(err), "fare: %v", err)
	assert.False(t, router.IsInconsistent(err))

	_, err = r.PathDistance(path)
	assert.True(t, router.IsNotFound(err), "distance: %v", err)
	assert.False(t, router.IsInconsistent(err))

	_, err = r.Segment(path)
	assert.True(t, router.IsNotFound(err), "segment: %v", err)
	assert.False(t, router.IsInconsistent(err))
}

func TestPlan(t *testing.T) {
	r := newRouter(t, router.WithDefaultTicket(fare.StoredValue))

	p, err := r.Plan("A", "D")
	require.NoError(t, err)
	assert.Equal(t, network.Path{"A", "B", "C", "D"}, p.Route.Path)
	assert.Len(t, p.Legs, 2)
	assert.Equal(t, 1, p.Transfers())
	assert.Equal(t, fare.StoredValue, p.Ticket)
	assert.Equal(t, 4, p.Fare)
	assert.Len(t, p.Quote.Prices, len(fare.TicketTypes))

	p, err = r.Plan("C", "C")
	require.NoError(t, err)
	assert.Empty(t, p.Legs)
	assert.Zero(t, p.Fare)

	_, err = r.Plan("A", "Y")
	assert.ErrorIs(t, err, router.ErrNoRoute)
	assert.True(t, router.IsNotFound(err))

	_, err = r.Plan("A", "Nowhere")
	assert.ErrorIs(t, err, network.ErrStationNotFound)
}

func TestAlternatives(t *testing.T) {
	r := newRouter(t)

	alts, err := r.Alternatives(context.Background(), "A", "D", fare.SingleJourney)
	require.NoError(t, err)
	require.Len(t, alts, 2)
	assert.Equal(t, network.Path{"A", "B", "C", "D"}, alts[0].Path)
	assert.InDelta(t, 10.0, alts[0].Distance, 1e-9)
	assert.Equal(t, network.Path{"A", "C", "D"}, alts[1].Path)
	assert.InDelta(t, 12.0, alts[1].Distance, 1e-9)
	assert.Equal(t, 4, alts[1].Fare)

	_, err = r.Alternatives(context.Background(), "A", "D", fare.TicketType(-3))
	assert.True(t, router.IsInvalidArgument(err))
}

func TestConcurrentQueries(t *testing.T) {
	r := newRouter(t, router.WithCacheSize(4))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, to := range []string{"B", "C", "D"} {
				rt, err := r.ShortestPath("A", to)
				assert.NoError(t, err)
				assert.Equal(t, "A", rt.Path.Start())
				assert.Equal(t, to, rt.Path.End())
			}
		}()
	}
	wg.Wait()
	r.Purge()
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	topo := filepath.Join(dir, "metro.txt")
	require.NoError(t, os.WriteFile(topo, []byte(
		"Line 1\nA---B 3\nB---C 5\nLine 2\nA---C 10\nA---B 2\nC---D bad\n"), 0o600))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := config.Default(topo)
	cfg.Routing.Merge = "min"
	r, err := router.Open(cfg, router.WithLogger(logger))
	require.NoError(t, err)

	w, err := r.Network().Graph().Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, fare.SingleJourney, r.DefaultTicket())

	logs := buf.String()
	assert.Contains(t, logs, "network ready")
	assert.Contains(t, logs, "topology rows skipped")

	cfg.Topology.Strict = true
	_, err = router.Open(cfg, router.WithLogger(logger))
	assert.Error(t, err)

	_, err = router.Open(nil)
	assert.Error(t, err)

	_, err = router.Open(config.Default(filepath.Join(dir, "missing.txt")), router.WithLogger(logger))
	assert.Error(t, err)
}
