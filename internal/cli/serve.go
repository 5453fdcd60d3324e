package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jefffranzen/capviz/internal/server"
	"github.com/jefffranzen/capviz/pkg/chart"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	manifest string // TOML manifest path (overrides the built-in catalog)
	noCache  bool   // disable the artifact cache
	scale    int    // raster supersampling factor for PNG previews
}

// serveCommand creates the serve command running the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:  "localhost:8580",
		scale: chart.RenderScale,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live chart previews in the browser",
		Long: `Serve runs a local HTTP server rendering the chart set on demand:
the dashboard at /, each chart at /charts/<id>, and its PNG at
/charts/<id>.png. Previews render through the same pipeline as
'capviz render', so they match the written artifacts exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "serve charts from a TOML manifest instead of the catalog")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "PNG supersampling factor")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	src, err := loadSource(opts.manifest, nil)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache, src.scope)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv, err := server.New(server.Config{
		Runner:            runner,
		Specs:             src.specs,
		DashboardTitle:    src.title,
		DashboardSubtitle: src.subtitle,
		Scale:             opts.scale,
		Logger:            c.Logger,
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printSuccess("Serving %d charts", len(src.specs))
	printDetail("Dashboard: http://%s/", opts.addr)
	printDetail("Charts:    http://%s/charts/%s", opts.addr, src.specs[0].ID)
	printNewline()
	printInfo("Press Ctrl+C to stop")

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
