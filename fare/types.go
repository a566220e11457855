// SPDX-License-Identifier: MIT
//
// Package fare prices journeys by distance under a ticket type.
//
// Single-journey fares follow a tiered schedule on total distance d (km):
//
//	d ≤ 4        2
//	4 < d ≤ 12   2 + ⌈(d-4)/4⌉
//	12 < d ≤ 24  4 + ⌈(d-12)/6⌉
//	24 < d ≤ 40  6 + ⌈(d-24)/8⌉
//	40 < d ≤ 50  8 + ⌈(d-40)/10⌉
//	d > 50       9 + ⌈(d-50)/20⌉
//
// Stored-value cards pay ⌈0.9 × single-journey⌉. Day passes ride for 0; the
// pass itself is bought once at PassPrice.
package fare

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTicketType indicates a ticket type outside the known set.
	ErrUnknownTicketType = errors.New("fare: unknown ticket type")

	// ErrNotAPass is returned by PassPrice for non-pass ticket types.
	ErrNotAPass = errors.New("fare: ticket type is not a pass")

	// ErrNotAdjacent indicates a consecutive path pair with no segment.
	ErrNotAdjacent = errors.New("fare: stations are not adjacent")

	// ErrBadDistance indicates a negative, NaN or infinite distance.
	ErrBadDistance = errors.New("fare: distance must be finite and non-negative")

	// ErrNilGraph is returned when a nil Weigher is passed.
	ErrNilGraph = errors.New("fare: graph is nil")
)

// TicketType selects a fare rule.
type TicketType int

const (
	SingleJourney TicketType = iota
	StoredValue
	OneDayPass
	ThreeDayPass
	SevenDayPass
)

// TicketTypes lists every known ticket type in declaration order.
var TicketTypes = []TicketType{SingleJourney, StoredValue, OneDayPass, ThreeDayPass, SevenDayPass}

var ticketNames = map[TicketType]string{
	SingleJourney: "single-journey",
	StoredValue:   "stored-value",
	OneDayPass:    "one-day-pass",
	ThreeDayPass:  "three-day-pass",
	SevenDayPass:  "seven-day-pass",
}

var ticketDescriptions = map[TicketType]string{
	SingleJourney: "Single journey ticket",
	StoredValue:   "Stored-value card (10% off)",
	OneDayPass:    "1-day pass",
	ThreeDayPass:  "3-day pass",
	SevenDayPass:  "7-day pass",
}

var passPrices = map[TicketType]int{
	OneDayPass:   18,
	ThreeDayPass: 45,
	SevenDayPass: 90,
}

// String returns the canonical name, e.g. "stored-value".
func (t TicketType) String() string {
	if s, ok := ticketNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TicketType(%d)", int(t))
}

// Description returns a human-readable label.
func (t TicketType) Description() string {
	if s, ok := ticketDescriptions[t]; ok {
		return s
	}
	return t.String()
}

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	_, ok := ticketNames[t]
	return ok
}

// IsPass reports whether t is a day pass.
func (t TicketType) IsPass() bool {
	_, ok := passPrices[t]
	return ok
}

// ParseTicketType maps a canonical name (case-insensitive, '_' accepted for
// '-') to its TicketType.
func ParseTicketType(s string) (TicketType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, t := range TicketTypes {
		if ticketNames[t] == key {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTicketType, s)
}

// UnmarshalText implements encoding.TextUnmarshaler, so ticket types can be
// read straight from YAML or flags.
func (t *TicketType) UnmarshalText(text []byte) error {
	v, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TicketType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTicketType, int(t))
	}
	return []byte(t.String()), nil
}
