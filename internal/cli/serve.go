package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/api"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
	"github.com/matzehuels/portwire/pkg/observability/prom"
)

const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	noCache bool   // disable the artifact cache
	redis   string // redis URL for a shared cache
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compatibility and render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis URL for a shared cache (default $PORTWIRE_REDIS)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom.New(registry).Install()

	runner, err := c.newRunner(ctx, opts.noCache, opts.redis)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	s := &api.Server{
		Registry: c.Registry,
		Types:    builtin.Types(),
		Runner:   runner,
		Logger:   c.Logger,
	}
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           s.Router(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
