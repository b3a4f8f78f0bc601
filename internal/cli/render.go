package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/pipeline"
	"github.com/matzehuels/portwire/pkg/render"
	"github.com/matzehuels/portwire/pkg/style"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file; its extension picks the format
	format     string  // explicit format, overrides the extension
	style      string  // style file
	scale      float64 // PNG pixel density
	background string  // background colour
	title      string  // SVG title
	noCache    bool    // disable the artifact cache
	refresh    bool    // re-render even on a cache hit
	redis      string  // redis URL for a shared cache
}

// renderCommand paints a scene file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Render a scene to SVG, PNG or a Graphviz overview",
		Example: `  portwire render scene.toml -o scene.svg
  portwire render scene.toml -o scene.png --scale 3 --background white
  portwire render scene.toml -o scene.dot
  portwire render scene.toml -o overview.svg --format graph`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scene name with .svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png, dot, graph (default from --output)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "style file (default $PORTWIRE_STYLE)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.background, "background", "", "background colour (default transparent)")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG document title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render and overwrite the cached artifact")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis URL for a shared cache (default $PORTWIRE_REDIS)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, scenePath string, opts renderOpts) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	prog := newProgress(c.Logger)

	format, output, err := resolveOutput(scenePath, opts.output, opts.format)
	if err != nil {
		return err
	}

	sceneData, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	styleData, _, err := readStyle(stylePath(opts.style))
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, opts.redis)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Cache.Close()

	res, err := runner.Execute(ctx, pipeline.Options{
		Scene:      sceneData,
		Style:      styleData,
		Format:     format,
		Scale:      opts.scale,
		Background: opts.background,
		Title:      opts.title,
		Refresh:    opts.refresh,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, res.Artifact, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess(w, "Rendered %s", filepath.Base(scenePath))
	printStats(w, res.Stats.Nodes, res.Stats.Connections, res.Stats.Drafts, res.Stats.Rejected, res.Cached)
	for _, line := range res.Rejected {
		printWarning(w, "%s", line)
	}
	printFile(w, output)
	if res.Stats.Rejected > 0 {
		printNextStep(w, "See which types convert", "portwire types")
	}
	prog.done("Rendered " + output)
	return nil
}

// resolveOutput picks the output format and path. An explicit format wins;
// otherwise the output extension decides, defaulting to SVG next to the
// scene file.
func resolveOutput(scenePath, output, format string) (string, string, error) {
	if format == "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
			format = strings.ToLower(ext)
		} else {
			format = pipeline.FormatSVG
		}
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return "", "", err
	}
	if output == "" {
		ext := format
		if format == pipeline.FormatGraph {
			ext = "graph.svg"
		}
		output = strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + "." + ext
	}
	return format, output, nil
}

// inspectCommand lists the draw operations each connection produces.
func (c *CLI) inspectCommand() *cobra.Command {
	var stylePathFlag string

	cmd := &cobra.Command{
		Use:   "inspect SCENE",
		Short: "List the draw operations each connection produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], stylePath(stylePathFlag))
		},
	}

	cmd.Flags().StringVarP(&stylePathFlag, "style", "s", "", "style file (default $PORTWIRE_STYLE)")
	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, scenePath, styleFile string) error {
	w := cmd.OutOrStdout()

	sceneData, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	_, st, err := readStyle(styleFile)
	if err != nil {
		return err
	}

	s, err := pipeline.NewRunner(nil, c.Registry, c.Logger).Build(sceneData, st)
	if err != nil {
		return err
	}

	var rec render.Recorder
	for _, conn := range s.Connections {
		out, in := conn.Port(nodes.PortOut), conn.Port(nodes.PortIn)
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s:%d %s %s:%d", out.Node, out.Index, iconArrow, in.Node, in.Index)))
		printOps(w, &rec, render.FromConnection(conn), st)
	}
	for _, d := range s.Drafts {
		p := d.Port(d.State().RequiredPort().Opposite())
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("draft from %s:%d", p.Node, p.Index)))
		printOps(w, &rec, render.FromConnection(d), st)
	}
	for _, r := range s.Rejected {
		printError(w, "%s %s %s: %s", r.From, iconArrow, r.To, errors.UserMessage(r.Err))
	}
	return nil
}

// printOps paints in onto rec and lists the recorded operations.
func printOps(w io.Writer, rec *render.Recorder, in render.Input, st style.ConnectionStyle) {
	rec.Reset()
	render.Paint(rec, in, st)
	for i, op := range rec.Ops {
		fmt.Fprintf(w, "  %s %s\n", StyleDim.Render(fmt.Sprintf("%2d", i)), op)
	}
}
