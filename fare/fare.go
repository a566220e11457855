// SPDX-License-Identifier: MIT

package fare

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/metro/core"
)

// Weigher is the graph view needed to measure a path. *core.Graph
// satisfies it.
type Weigher interface {
	Weight(from, to string) (float64, error)
}

// tier is one band of the single-journey schedule: distances in
// (from, to] cost base + ⌈(d-from)/step⌉.
type tier struct {
	from, to float64
	base     int
	step     float64
}

var schedule = []tier{
	{from: 4, to: 12, base: 2, step: 4},
	{from: 12, to: 24, base: 4, step: 6},
	{from: 24, to: 40, base: 6, step: 8},
	{from: 40, to: 50, base: 8, step: 10},
	{from: 50, to: math.Inf(1), base: 9, step: 20},
}

const (
	minimumFare = 2
	minimumKm   = 4.0
)

// SingleJourneyFare returns the single-journey fare for distance km.
// It assumes d is finite and non-negative; Calculate validates input.
func SingleJourneyFare(d float64) int {
	if d <= minimumKm {
		return minimumFare
	}
	for _, t := range schedule {
		if d <= t.to {
			return t.base + int(math.Ceil((d-t.from)/t.step))
		}
	}

	return minimumFare // unreachable: last tier is unbounded
}

// StoredValueFare returns ⌈0.9 × single-journey⌉ for distance d, computed
// in integers as ⌈9f/10⌉.
func StoredValueFare(d float64) int {
	return (SingleJourneyFare(d)*9 + 9) / 10
}

// Calculate returns the per-ride fare for distance d under t.
// A zero distance costs nothing under any ticket type.
func Calculate(d float64, t TicketType) (int, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTicketType, int(t))
	}
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadDistance, d)
	}
	if d == 0 || t.IsPass() {
		return 0, nil
	}
	if t == StoredValue {
		return StoredValueFare(d), nil
	}

	return SingleJourneyFare(d), nil
}

// PassPrice returns the purchase price of a day pass.
func PassPrice(t TicketType) (int, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTicketType, int(t))
	}
	p, ok := passPrices[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotAPass, t)
	}

	return p, nil
}

// Distance sums the segment distances along path. Paths of fewer than two
// stations measure 0. An unknown station is reported as
// core.ErrVertexNotFound; two known but unconnected stations as
// ErrNotAdjacent.
func Distance(g Weigher, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if errors.Is(err, core.ErrVertexNotFound) {
			return 0, fmt.Errorf("fare: %w", err)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %q–%q: %v", ErrNotAdjacent, path[i-1], path[i], err)
		}
		total += w
	}

	return total, nil
}

// ForPath prices a ride along path under t.
func ForPath(g Weigher, path []string, t TicketType) (int, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTicketType, int(t))
	}
	if len(path) <= 1 {
		return 0, nil
	}
	d, err := Distance(g, path)
	if err != nil {
		return 0, err
	}

	return Calculate(d, t)
}

// Price is the cost of one ride under one ticket type. PassPrice is the
// one-off purchase price and is 0 for non-pass tickets.
type Price struct {
	Ticket    TicketType
	PerRide   int
	PassPrice int
}

// Quote is the price of one path under every ticket type.
type Quote struct {
	Distance float64
	Prices   []Price // in TicketTypes order
}

// QuoteFor measures path once and prices it under every ticket type.
func QuoteFor(g Weigher, path []string) (Quote, error) {
	d, err := Distance(g, path)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{Distance: d, Prices: make([]Price, 0, len(TicketTypes))}
	for _, t := range TicketTypes {
		p := Price{Ticket: t}
		if p.PerRide, err = Calculate(d, t); err != nil {
			return Quote{}, err
		}
		if t.IsPass() {
			p.PassPrice = passPrices[t]
		}
		q.Prices = append(q.Prices, p)
	}

	return q, nil
}
