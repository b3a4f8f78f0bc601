// Package render turns a connection's geometry and interaction state into
// draw calls on a [Painter].
//
// # Overview
//
// [Paint] is a pure function of its inputs: the connection geometry, whether
// an end still requires a port, the selection flag, the two endpoint data
// types and an explicit [style.ConnectionStyle]. It issues, in order:
//
//  1. Halo: a stroke at twice the line width when hovered or selected.
//  2. Sketch: a dashed construction stroke while an end is dangling.
//  3. Normal: for anchored connections, one stroke in the normal (or
//     selected) colour; with data-defined colours and differing endpoint
//     types, N flat segments whose colours run from the out type's colour
//     to the in type's colour.
//  4. Endpoint markers: filled circles at source and sink.
//
// The sketch and normal passes are mutually exclusive.
//
// # Backends
//
// [Recorder] keeps draw calls for inspection and tests. The [sink]
// subpackage paints into SVG documents and PNG images.
//
//	var rec render.Recorder
//	render.Paint(&rec, render.FromConnection(conn), style.Default())
package render
