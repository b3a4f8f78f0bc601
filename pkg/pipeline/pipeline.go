// Package pipeline provides the decode → build → paint pipeline shared by
// the CLI and the HTTP server.
//
// A [Runner] takes raw scene and style documents, builds the scene against a
// model registry, and paints it in the requested format unless the artifact
// is already cached:
//
//	runner := pipeline.NewRunner(cache, builtin.NewRegistry(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Scene:  sceneTOML,
//	    Format: pipeline.FormatSVG,
//	})
//	os.WriteFile("scene.svg", result.Artifact, 0644)
//
// Cached artifacts are keyed by the hashes of both documents and the output
// options, so editing either file invalidates the entry.
package pipeline

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/style"
)

// Output formats. FormatDOT is the Graphviz source of the node-link overview
// and FormatGraph the same overview laid out and rendered to SVG.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatDOT, FormatGraph}

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// MaxScale is the largest accepted PNG pixel density.
	MaxScale = 16.0

	// DefaultMargin surrounds the scene in SVG and PNG output.
	DefaultMargin = 20.0

	// TTLArtifact bounds how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Options describes one render.
type Options struct {
	Scene      []byte // scene TOML
	Style      []byte // style TOML; empty means style.Default()
	Format     string
	Scale      float64 // PNG only
	Background string  // colour name or hex; empty means transparent
	Title      string  // SVG only
	Refresh    bool    // skip the cache lookup, still store the result
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", format, Formats)
	}
	return nil
}

// ValidateAndSetDefaults validates o and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Scene) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene is empty")
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	switch {
	case math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0):
		return errors.New(errors.ErrCodeInvalidInput, "scale must be finite: %v", o.Scale)
	case o.Scale > MaxScale:
		return errors.New(errors.ErrCodeInvalidInput, "scale %v exceeds the maximum of %v", o.Scale, MaxScale)
	case o.Scale <= 0:
		o.Scale = DefaultScale
	}
	if o.Background != "" {
		if _, err := style.ParseColor(o.Background); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes a built scene.
type Stats struct {
	Nodes       int
	Connections int
	Drafts      int
	Rejected    int
	Duration    time.Duration
}

// Result is the output of [Runner.Execute].
type Result struct {
	Artifact []byte
	Format   string
	Key      string
	Cached   bool
	Stats    Stats

	// Rejected lists refused connections as "from -> to: reason".
	Rejected []string
}
