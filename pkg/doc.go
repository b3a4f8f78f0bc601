// Package pkg holds the libraries behind Portwire, the connection core of a
// node editor.
//
// # Overview
//
// A node editor lets users wire typed output ports to typed input ports.
// Portwire decides which wires are legal, tracks wires while they are being
// dragged, and paints them. The packages are layered bottom-up:
//
//  1. [nodes] - data types, node models, the converter and model registries
//  2. [geometry] - points, rectangles, cubic Bézier paths
//  3. [connection] - connection geometry and the draft/complete state machine
//  4. [style] - connection style: colours, widths, gradient segments
//  5. [render] - the Painter interface and the connection paint passes
//  6. [scene] - TOML scene files resolved into placed nodes and connections
//  7. [pipeline] - scene + style to SVG, PNG or Graphviz, with caching
//  8. [api] - the HTTP surface over the registries and the pipeline
//
// # Data Flow
//
//	scene.toml + style.toml
//	         ↓
//	    [scene] package (place nodes, check port types)
//	         ↓
//	    [render] package (halo, stroke, endpoints)
//	         ↓
//	    [render/sink] package (SVG / PNG)
//
// # Quick Start
//
// Check whether an integer output may feed a float input:
//
//	reg := builtin.NewRegistry()
//	if conv, ok := reg.TypeConverter(builtin.Integer, builtin.Float); ok {
//	    fmt.Println(conv(builtin.IntegerData{Value: 3}))
//	}
//
// Render a scene file:
//
//	data, _ := os.ReadFile("scene.toml")
//	res, err := pipeline.NewRunner(nil, nil, nil).Execute(ctx, pipeline.Options{
//	    Scene:  data,
//	    Format: pipeline.FormatSVG,
//	})
//
// # Supporting Packages
//
//   - [cache] - artifact cache backends: file, Redis, null
//   - [errors] - coded errors shared by the CLI and the HTTP API
//   - [observability] - hooks for metrics, with a Prometheus adapter in [observability/prom]
//   - [httputil] - JSON responses and request logging for the API server
//   - [buildinfo] - version information stamped in at link time
//
// [nodes]: github.com/matzehuels/portwire/pkg/nodes
// [geometry]: github.com/matzehuels/portwire/pkg/geometry
// [connection]: github.com/matzehuels/portwire/pkg/connection
// [style]: github.com/matzehuels/portwire/pkg/style
// [render]: github.com/matzehuels/portwire/pkg/render
// [render/sink]: github.com/matzehuels/portwire/pkg/render/sink
// [scene]: github.com/matzehuels/portwire/pkg/scene
// [pipeline]: github.com/matzehuels/portwire/pkg/pipeline
// [api]: github.com/matzehuels/portwire/pkg/api
// [cache]: github.com/matzehuels/portwire/pkg/cache
// [errors]: github.com/matzehuels/portwire/pkg/errors
// [observability]: github.com/matzehuels/portwire/pkg/observability
// [observability/prom]: github.com/matzehuels/portwire/pkg/observability/prom
// [httputil]: github.com/matzehuels/portwire/pkg/httputil
// [buildinfo]: github.com/matzehuels/portwire/pkg/buildinfo
package pkg
