// Package router is the query facade over a loaded transit network.
//
// A Router owns a frozen network.Network and answers every query the
// engine supports: shortest and fewest-stop routes, all simple routes,
// stations within a distance budget, ride legs and fares. Route results
// are kept in an LRU cache keyed by endpoints; cached slices are copied
// on the way out, so callers may modify what they receive.
//
// All methods are safe for concurrent use.
//
// Errors from the underlying packages are returned wrapped. Use
// IsNotFound, IsInvalidArgument and IsInconsistent to classify them.
package router
