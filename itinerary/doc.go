// Package itinerary splits a station path into ride legs, one per
// contiguous stretch travelled on a single line.
//
// The connecting line of a hop a→b is chosen deterministically:
//
//  1. the lexicographically smallest line that declares a segment a–b;
//  2. otherwise the lexicographically smallest line serving both stations.
//
// Consecutive hops on the same connecting line merge into one Leg, so a
// path with no line change yields exactly one Leg.
package itinerary
