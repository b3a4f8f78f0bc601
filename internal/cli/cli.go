// Package cli implements the portwire command-line interface.
//
// Commands:
//   - types, check: the builtin data types and their compatibility
//   - models: the registered node models by category
//   - render, inspect: paint a scene file, or list its draw operations
//   - style: print or validate a connection style
//   - explore: interactive compatibility matrix
//   - serve: HTTP API with Prometheus metrics
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/buildinfo"
	"github.com/matzehuels/portwire/pkg/cache"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
	"github.com/matzehuels/portwire/pkg/pipeline"
	"github.com/matzehuels/portwire/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "portwire"

	// styleEnv names a style file used when --style is not given.
	styleEnv = "PORTWIRE_STYLE"

	// redisEnv names a Redis URL used when --redis is not given.
	redisEnv = "PORTWIRE_REDIS"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *nodes.ModelRegistry
}

// New creates a CLI with the builtin model catalogue and a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: builtin.NewRegistry(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Portwire checks and paints typed node connections",
		Long:         `Portwire is the connection core of a node editor: it decides which port data types may be connected, and paints connections and drafts as SVG, PNG or Graphviz overviews.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.typesCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.modelsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.styleCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ExitError carries an exit status for a failure the command has already
// reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by Redis when redisURL is set,
// by the file cache otherwise, and by nothing when noCache is set.
func (c *CLI) newRunner(ctx context.Context, noCache bool, redisURL string) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache, redisURL)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.Registry, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool, redisURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL == "" {
		redisURL = os.Getenv(redisEnv)
	}
	if redisURL != "" {
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(ctx, redisURL, appName+":")
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/portwire/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Style Helpers
// =============================================================================

// stylePath resolves the --style flag, falling back to $PORTWIRE_STYLE.
func stylePath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(styleEnv)
}

// readStyle returns the raw style document and its parsed form. An empty
// path yields the default style and no document.
func readStyle(path string) ([]byte, style.ConnectionStyle, error) {
	if path == "" {
		return nil, style.Default(), nil
	}
	st, err := style.Load(path)
	if err != nil {
		return nil, style.ConnectionStyle{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, style.ConnectionStyle{}, err
	}
	return data, st, nil
}
