package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/portwire/pkg/cache"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/observability"
	"github.com/matzehuels/portwire/pkg/render/sink"
	"github.com/matzehuels/portwire/pkg/scene"
	"github.com/matzehuels/portwire/pkg/style"
)

// Runner executes renders against one registry and one cache.
//
// The registry is only read, so a Runner may be shared by concurrent
// requests once setup is finished.
type Runner struct {
	Cache    cache.Cache
	Registry *nodes.ModelRegistry
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, reg *nodes.ModelRegistry, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if reg == nil {
		reg = nodes.NewModelRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Registry: reg, Logger: logger}
}

// Execute renders opts.Scene in opts.Format.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	connections := 0
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Format, connections, time.Since(start), err)
	}()

	st, err := r.style(opts.Style)
	if err != nil {
		return nil, err
	}
	s, err := r.build(opts.Scene, st)
	if err != nil {
		return nil, err
	}
	connections = len(s.Connections) + len(s.Drafts)

	result = &Result{
		Format:   opts.Format,
		Rejected: rejectedLines(s),
		Stats: Stats{
			Nodes:       len(s.Nodes),
			Connections: len(s.Connections),
			Drafts:      len(s.Drafts),
			Rejected:    len(s.Rejected),
		},
	}
	for _, line := range result.Rejected {
		r.Logger.Warn("connection rejected", "connection", line)
	}

	result.Key = cache.ArtifactKey(cache.Hash(opts.Scene), cache.Hash(opts.Style), cache.ArtifactKeyOpts{
		Format:     opts.Format,
		Scale:      opts.Scale,
		Background: opts.Background,
		Title:      opts.Title,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, result.Key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", opts.Format)
			result.Artifact = data
			result.Cached = true
			result.Stats.Duration = time.Since(start)
			return result, nil
		} else if err != nil {
			r.Logger.Warn("cache lookup failed", "err", err)
		}
	}

	result.Artifact, err = r.paint(ctx, s, st, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, result.Key, result.Artifact, TTLArtifact); err != nil {
		r.Logger.Warn("cache store failed", "err", err)
	}

	result.Stats.Duration = time.Since(start)
	r.Logger.Debug("rendered scene",
		"format", opts.Format,
		"connections", result.Stats.Connections,
		"duration", result.Stats.Duration)
	return result, nil
}

// Build decodes and builds a scene with st's curve applied.
func (r *Runner) Build(sceneData []byte, st style.ConnectionStyle) (*scene.Scene, error) {
	return r.build(sceneData, st)
}

func (r *Runner) build(data []byte, st style.ConnectionStyle) (*scene.Scene, error) {
	f, err := scene.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s, err := scene.Build(f, r.Registry)
	if err != nil {
		return nil, err
	}
	s.SetCurve(st.Curve)
	return s, nil
}

func (r *Runner) style(data []byte) (style.ConnectionStyle, error) {
	if len(data) == 0 {
		return style.Default(), nil
	}
	return style.Decode(bytes.NewReader(data))
}

func (r *Runner) paint(ctx context.Context, s *scene.Scene, st style.ConnectionStyle, opts Options) ([]byte, error) {
	var bg *style.Color
	if opts.Background != "" {
		c := style.MustParseColor(opts.Background)
		bg = &c
	}

	switch opts.Format {
	case FormatDOT:
		return []byte(scene.ToDOT(s)), nil
	case FormatGraph:
		return scene.RenderDOT(ctx, scene.ToDOT(s))
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if bg != nil {
			pngOpts = append(pngOpts, sink.WithPNGBackground(*bg))
		}
		return sink.RenderPNG(s.Frame(st, DefaultMargin), s.Inputs(), st, pngOpts...)
	default:
		var svgOpts []sink.SVGOption
		if bg != nil {
			svgOpts = append(svgOpts, sink.WithBackground(*bg))
		}
		if opts.Title != "" {
			svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
		}
		return sink.RenderSVG(s.Frame(st, DefaultMargin), s.Inputs(), st, svgOpts...), nil
	}
}

func rejectedLines(s *scene.Scene) []string {
	lines := make([]string, len(s.Rejected))
	for i, rej := range s.Rejected {
		lines[i] = fmt.Sprintf("%s -> %s: %s cannot feed %s", rej.From, rej.To, rej.Out, rej.In)
	}
	return lines
}
