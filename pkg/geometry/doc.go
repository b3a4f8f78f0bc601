// Package geometry describes where a connection is drawn.
//
// A [Connection] holds the two endpoint positions of a connection (source at
// the output port, sink at the input port) and derives the control points of
// the cubic Bezier that joins them. Both control arms point horizontally away
// from their endpoint, producing the characteristic S-curve of node editors:
//
//	dx  := sink.X - source.X
//	off := max(MinOffset, |dx| * OffsetRatio)
//	c1  := source + (off, 0)
//	c2  := sink   - (off, 0)
//
// MinOffset keeps both arms non-degenerate when the endpoints are stacked
// vertically or coincide.
//
// [Path] is a minimal path builder (line and cubic segments) with
// parametric sampling, used by painters that cannot stroke gradients.
package geometry
