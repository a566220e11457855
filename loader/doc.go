// Package loader reads network topologies into a network.Builder.
//
// Two formats are supported.
//
// Text, one record per row:
//
//	1号线站点间距            line header; the "站点间距" suffix is dropped
//	Line 2                   rows starting with "Line " or ending in ':'
//	                         are line headers too
//	Hankou---Xunlimen 2.1    segment on the current line
//	Xunlimen—Youyi Road 1.4  em dash separator is accepted as well
//	# comment
//
// Any other row is a segment row. Malformed ones (bad separator, missing
// or non-numeric distance, non-positive distance, self loop) are skipped
// and logged at Warn unless WithStrict is set. Station names may contain spaces; the
// last field of a segment row is the distance.
//
// YAML:
//
//	lines:
//	  - name: Line 1
//	    segments:
//	      - {from: Hankou, to: Xunlimen, distance: 2.1}
//
// YAML documents are validated as a whole before any segment is added.
package loader
