package router

import (
	"errors"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dfs"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/itinerary"
	"github.com/katalvlaran/metro/network"
)

var notFound = []error{
	network.ErrStationNotFound,
	network.ErrLineNotFound,
	core.ErrVertexNotFound,
	dijkstra.ErrVertexNotFound,
	dfs.ErrStartVertexNotFound,
	dfs.ErrEndVertexNotFound,
	bfs.ErrStartVertexNotFound,
	bfs.ErrEndVertexNotFound,
	ErrNoRoute,
}

var invalidArgument = []error{
	dijkstra.ErrBadMaxDistance,
	fare.ErrUnknownTicketType,
	fare.ErrNotAPass,
	fare.ErrBadDistance,
	core.ErrBadWeight,
	dfs.ErrOptionViolation,
	bfs.ErrOptionViolation,
	itinerary.ErrPathTooShort,
}

var inconsistent = []error{
	itinerary.ErrNotAdjacent,
	itinerary.ErrNoCommonLine,
	fare.ErrNotAdjacent,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err names a station, line or route that
// does not exist.
func IsNotFound(err error) bool { return isAny(err, notFound) }

// IsInvalidArgument reports whether err rejects a caller-supplied value
// such as a distance budget or ticket type.
func IsInvalidArgument(err error) bool { return isAny(err, invalidArgument) }

// IsInconsistent reports whether err reveals a path or topology that does
// not match the network, such as non-adjacent consecutive stations.
func IsInconsistent(err error) bool { return isAny(err, inconsistent) }
