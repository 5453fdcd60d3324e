package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output directory for artifacts
	formats  []string // output formats: "html", "png"
	manifest string   // TOML manifest path (overrides the built-in catalog)
	dash     bool     // also compose the executive dashboard
	noCache  bool     // disable the artifact cache
	refresh  bool     // bypass the cache and re-render
	workers  int      // render concurrency
	scale    int      // raster supersampling factor
	width    int      // override chart width in logical px
	height   int      // override chart height in logical px
	pick     bool     // interactively pick charts
}

// renderCommand creates the render command for generating chart artifacts.
//
// Default settings:
//   - charts: the full built-in catalog
//   - formats: html and png
//   - output: ./graphics
//   - dashboard: on (executive_dashboard.html/.png)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		dash: true,
	}

	cmd := &cobra.Command{
		Use:   "render [chart-id...]",
		Short: "Render charts to interactive HTML and static PNG files",
		Long: `Render produces one HTML and one PNG artifact per chart, named
<chart-id>.html and <chart-id>.png, plus combined executive_dashboard
artifacts. Without arguments the full built-in catalog is rendered;
pass chart ids to render a subset (see 'capviz list').`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", pipeline.DefaultOutputDir, "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html, png (comma-separated, default both)")
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "render charts from a TOML manifest instead of the catalog")
	cmd.Flags().BoolVar(&opts.dash, "dashboard", opts.dash, "compose the executive dashboard artifacts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached artifacts exist")
	cmd.Flags().IntVar(&opts.workers, "workers", pipeline.DefaultWorkers, "number of concurrent render workers")
	cmd.Flags().IntVar(&opts.scale, "scale", chart.RenderScale, "PNG supersampling factor")
	cmd.Flags().IntVar(&opts.width, "width", 0, fmt.Sprintf("chart width in logical px (min %d)", chart.MinWidth))
	cmd.Flags().IntVar(&opts.height, "height", 0, fmt.Sprintf("chart height in logical px (min %d)", chart.MinHeight))
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick charts interactively")

	return cmd
}

// runRender resolves the chart set and executes the batch.
func (c *CLI) runRender(ctx context.Context, ids []string, opts *renderOpts) error {
	src, err := loadSource(opts.manifest, ids)
	if err != nil {
		return err
	}

	if opts.pick {
		picked, err := pickCharts(src.specs)
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			printInfo("No charts selected")
			return nil
		}
		src.specs = picked
	}

	if opts.width > 0 || opts.height > 0 {
		for i := range src.specs {
			if opts.width > 0 {
				src.specs[i].Width = opts.width
			}
			if opts.height > 0 {
				src.specs[i].Height = opts.height
			}
		}
	}

	runner, err := c.newRunner(ctx, opts.noCache, src.scope)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d charts...", len(src.specs)))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Specs:             src.specs,
		OutputDir:         opts.output,
		Formats:           opts.formats,
		Dashboard:         opts.dash,
		DashboardTitle:    src.title,
		DashboardSubtitle: src.subtitle,
		Refresh:           opts.refresh,
		Workers:           opts.workers,
		Scale:             opts.scale,
		Logger:            c.Logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d charts", len(src.specs)))

	printResult(result)
	if len(result.Failed()) == 0 {
		printNewline()
		printNextStep("Preview in the browser", "capviz serve")
	}
	return nil
}

// printResult prints per-artifact lines followed by batch stats.
func printResult(result *pipeline.Result) {
	failed := result.Failed()
	if len(failed) == 0 {
		printSuccess("Wrote %d artifacts to %s", result.Succeeded(), result.OutputDir)
	} else {
		printWarning("Wrote %d artifacts to %s, %d failed", result.Succeeded(), result.OutputDir, len(failed))
	}

	all := append(append([]pipeline.ChartResult{}, result.Charts...), result.Dashboard...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	for _, cr := range all {
		if cr.Err == nil {
			printFile(cr.Path, cr.Cached)
		}
	}
	for _, cr := range failed {
		printError("%s.%s: %v", cr.ChartID, cr.Format, cr.Err)
	}
	printBatchStats(result.Succeeded(), len(failed), result.CacheHits())
}
