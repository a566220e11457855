package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/network"
)

// buildScenario returns A–B=3, B–C=5 on L1 and A–C=10 on L2.
func buildScenario(t *testing.T) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	require.NoError(t, b.AddSegment("L1", "A", "B", 3))
	require.NoError(t, b.AddSegment("L1", "B", "C", 5))
	require.NoError(t, b.AddSegment("L2", "A", "C", 10))
	n, err := b.Build()
	require.NoError(t, err)

	return n
}

func TestBuilder_Registries(t *testing.T) {
	n := buildScenario(t)

	assert.Equal(t, []string{"A", "B", "C"}, n.Stations())
	assert.Equal(t, []string{"L1", "L2"}, n.Lines())
	assert.True(t, n.StationExists("B"))
	assert.False(t, n.StationExists("Z"))

	lines, err := n.LinesOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2"}, lines)

	lines, err = n.LinesOf("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, lines)

	assert.Equal(t, []string{"A", "C"}, n.TransferStations())

	l1, err := n.Line("L1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "B", "C"}, l1.Stations(), "declaration order, no dedup")

	assert.Equal(t, network.Summary{Stations: 3, Lines: 2, Segments: 3, Transfers: 2}, n.Summary())
}

func TestBuilder_NotFound(t *testing.T) {
	n := buildScenario(t)

	_, err := n.Station("Z")
	assert.ErrorIs(t, err, network.ErrStationNotFound)
	assert.Contains(t, err.Error(), `"Z"`)
	_, err = n.LinesOf("Z")
	assert.ErrorIs(t, err, network.ErrStationNotFound)
	_, err = n.Line("L9")
	assert.ErrorIs(t, err, network.ErrLineNotFound)
}

func TestBuilder_IdempotentRegistration(t *testing.T) {
	b := network.NewBuilder()
	require.NoError(t, b.AddStation("A"))
	require.NoError(t, b.AddStation("A"))
	require.NoError(t, b.AddLineMembership("A", "L1"))
	require.NoError(t, b.AddLineMembership("A", "L1"))
	n, err := b.Build()
	require.NoError(t, err)

	s, err := n.Station("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, s.Lines())
	assert.False(t, s.IsTransfer())
	assert.True(t, s.HasLine("L1"))
	assert.Equal(t, 1, n.Graph().VertexCount())
}

func TestBuilder_CurrentLine(t *testing.T) {
	b := network.NewBuilder()

	// No line declared yet: edge and stations are kept without lines.
	require.NoError(t, b.AddSegmentOnCurrentLine("X", "Y", 1))
	require.NoError(t, b.DeclareLine("L1"))
	assert.Equal(t, "L1", b.CurrentLine())
	require.NoError(t, b.AddSegmentOnCurrentLine("Y", "Z", 2))

	n, err := b.Build()
	require.NoError(t, err)
	x, err := n.Station("X")
	require.NoError(t, err)
	assert.Empty(t, x.Lines())
	assert.True(t, n.Graph().HasEdge("X", "Y"))

	y, err := n.Station("Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, y.Lines())
}

func TestBuilder_Validation(t *testing.T) {
	b := network.NewBuilder()

	assert.ErrorIs(t, b.AddStation(""), network.ErrEmptyStation)
	assert.ErrorIs(t, b.DeclareLine(""), network.ErrEmptyLine)
	assert.ErrorIs(t, b.AddLineMembership("A", ""), network.ErrEmptyLine)
	assert.ErrorIs(t, b.AddSegment("L1", "", "B", 1), network.ErrEmptyStation)
	assert.ErrorIs(t, b.AddSegment("L1", "A", "B", 0), core.ErrBadWeight)
	assert.ErrorIs(t, b.AddSegment("L1", "A", "A", 1), core.ErrLoopNotAllowed)

	n, err := b.Build()
	require.NoError(t, err)
	assert.Empty(t, n.Stations(), "rejected segments register nothing")
	assert.Empty(t, n.Lines())
}

func TestBuilder_FrozenAfterBuild(t *testing.T) {
	b := network.NewBuilder()
	require.NoError(t, b.AddSegment("L1", "A", "B", 1))
	n, err := b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddStation("C"), network.ErrBuilderFrozen)
	assert.ErrorIs(t, b.AddSegment("L1", "B", "C", 1), network.ErrBuilderFrozen)
	assert.ErrorIs(t, b.DeclareLine("L2"), network.ErrBuilderFrozen)
	_, err = b.Build()
	assert.ErrorIs(t, err, network.ErrBuilderFrozen)

	assert.ErrorIs(t, n.Graph().AddEdge("A", "C", 1), core.ErrFrozen)
	assert.False(t, n.StationExists("C"))
}

func TestBuilder_RepeatedPair(t *testing.T) {
	last := network.NewBuilder()
	require.NoError(t, last.AddSegment("L1", "A", "B", 2))
	require.NoError(t, last.AddSegment("L2", "B", "A", 4))
	nl, err := last.Build()
	require.NoError(t, err)
	w, err := nl.Graph().Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)

	shortest := network.NewBuilder(network.WithShortestSegment())
	require.NoError(t, shortest.AddSegment("L1", "A", "B", 2))
	require.NoError(t, shortest.AddSegment("L2", "B", "A", 4))
	ns, err := shortest.Build()
	require.NoError(t, err)
	w, err = ns.Graph().Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	// Both lines are still recorded on both stations.
	lines, err := ns.LinesOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2"}, lines)
}

func TestPath_Accessors(t *testing.T) {
	var empty network.Path
	assert.True(t, empty.Empty())
	assert.Equal(t, "", empty.Start())
	assert.Equal(t, 0, empty.Stops())

	p := network.Path{"A", "B", "C"}
	assert.Equal(t, "A", p.Start())
	assert.Equal(t, "C", p.End())
	assert.Equal(t, 2, p.Stops())
}

func TestNetwork_SegmentsPerLine(t *testing.T) {
	n := buildScenario(t)

	assert.True(t, n.Adjacent("C", "A"))
	assert.False(t, n.Adjacent("A", "Z"))

	assert.True(t, n.DeclaresSegment("L1", "B", "A"))
	assert.True(t, n.DeclaresSegment("L2", "A", "C"))
	assert.False(t, n.DeclaresSegment("L1", "A", "C"), "A and C share L1 but L1 has no A–C segment")
	assert.False(t, n.DeclaresSegment("L9", "A", "B"))

	l2, err := n.Line("L2")
	require.NoError(t, err)
	assert.True(t, l2.HasSegment("C", "A"))
}
