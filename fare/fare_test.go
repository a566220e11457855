package fare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/fare"
)

func TestSingleJourneyFare_Schedule(t *testing.T) {
	cases := []struct {
		d    float64
		want int
	}{
		{0.5, 2},
		{4, 2},
		{4.01, 3},
		{8, 3},
		{8.5, 4},
		{12, 4},
		{12.1, 5},
		{24, 6},
		{30, 7},
		{40, 8},
		{41, 9},
		{50, 9},
		{50.5, 10},
		{60, 10},
		{70, 10},
		{70.1, 11},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, fare.SingleJourneyFare(c.d), "d=%v", c.d)
	}
}

func TestSingleJourneyFare_Monotone(t *testing.T) {
	prev := 0
	for d := 0.1; d < 120; d += 0.1 {
		got := fare.SingleJourneyFare(d)
		assert.GreaterOrEqual(t, got, prev, "d=%v", d)
		prev = got
	}
}

func TestStoredValueFare(t *testing.T) {
	assert.Equal(t, 4, fare.StoredValueFare(12)) // ⌈3.6⌉
	assert.Equal(t, 2, fare.StoredValueFare(3))  // ⌈1.8⌉
	assert.Equal(t, 9, fare.StoredValueFare(60)) // ⌈9.0⌉
}

func TestCalculate(t *testing.T) {
	got, err := fare.Calculate(12, fare.SingleJourney)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = fare.Calculate(12, fare.StoredValue)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	for _, p := range []fare.TicketType{fare.OneDayPass, fare.ThreeDayPass, fare.SevenDayPass} {
		got, err = fare.Calculate(33, p)
		require.NoError(t, err)
		assert.Zero(t, got, p.String())
	}

	got, err = fare.Calculate(0, fare.SingleJourney)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = fare.Calculate(5, fare.TicketType(42))
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)
	_, err = fare.Calculate(-1, fare.SingleJourney)
	assert.ErrorIs(t, err, fare.ErrBadDistance)
	_, err = fare.Calculate(math.NaN(), fare.SingleJourney)
	assert.ErrorIs(t, err, fare.ErrBadDistance)
}

func TestPassPrice(t *testing.T) {
	want := map[fare.TicketType]int{fare.OneDayPass: 18, fare.ThreeDayPass: 45, fare.SevenDayPass: 90}
	for tt, price := range want {
		got, err := fare.PassPrice(tt)
		require.NoError(t, err)
		assert.Equal(t, price, got)
	}

	_, err := fare.PassPrice(fare.StoredValue)
	assert.ErrorIs(t, err, fare.ErrNotAPass)
	_, err = fare.PassPrice(fare.TicketType(-1))
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)
}

func TestTicketType_Names(t *testing.T) {
	for _, tt := range fare.TicketTypes {
		parsed, err := fare.ParseTicketType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, parsed)
		assert.NotEmpty(t, tt.Description())
	}

	got, err := fare.ParseTicketType("  Stored_Value ")
	require.NoError(t, err)
	assert.Equal(t, fare.StoredValue, got)

	_, err = fare.ParseTicketType("monthly")
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)

	assert.Equal(t, "TicketType(9)", fare.TicketType(9).String())
	assert.True(t, fare.ThreeDayPass.IsPass())
	assert.False(t, fare.SingleJourney.IsPass())

	var tt fare.TicketType
	require.NoError(t, tt.UnmarshalText([]byte("seven-day-pass")))
	assert.Equal(t, fare.SevenDayPass, tt)
	_, err = fare.TicketType(9).MarshalText()
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)
}

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("C", "D", 4.5))

	return g
}

func TestDistance(t *testing.T) {
	g := scenario(t)

	d, err := fare.Distance(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, d, 1e-9)

	d, err = fare.Distance(g, []string{"A"})
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = fare.Distance(g, []string{"A", "D"})
	assert.ErrorIs(t, err, fare.ErrNotAdjacent)
	assert.Contains(t, err.Error(), `"A"–"D"`)

	_, err = fare.Distance(g, []string{"A", "Nowhere"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.NotErrorIs(t, err, fare.ErrNotAdjacent)

	_, err = fare.Distance(nil, []string{"A", "B"})
	assert.ErrorIs(t, err, fare.ErrNilGraph)
}

func TestForPath(t *testing.T) {
	g := scenario(t)

	got, err := fare.ForPath(g, []string{"A", "B", "C", "D"}, fare.SingleJourney) // 12.5 km
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = fare.ForPath(g, []string{"A"}, fare.SingleJourney)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = fare.ForPath(g, []string{"A"}, fare.TicketType(7))
	assert.ErrorIs(t, err, fare.ErrUnknownTicketType)

	_, err = fare.ForPath(g, []string{"B", "D"}, fare.StoredValue)
	assert.ErrorIs(t, err, fare.ErrNotAdjacent)

	_, err = fare.ForPath(g, []string{"Nowhere", "A"}, fare.SingleJourney)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestQuoteFor(t *testing.T) {
	q, err := fare.QuoteFor(scenario(t), []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, q.Distance, 1e-9)
	assert.Equal(t, []fare.Price{
		{Ticket: fare.SingleJourney, PerRide: 5},
		{Ticket: fare.StoredValue, PerRide: 5},
		{Ticket: fare.OneDayPass, PassPrice: 18},
		{Ticket: fare.ThreeDayPass, PassPrice: 45},
		{Ticket: fare.SevenDayPass, PassPrice: 90},
	}, q.Prices)
}
