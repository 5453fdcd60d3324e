package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jefffranzen/capviz/pkg/cache"
	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
	"github.com/jefffranzen/capviz/pkg/observability"
	"github.com/jefffranzen/capviz/pkg/render/interactive"
	"github.com/jefffranzen/capviz/pkg/render/static"
)

// Runner encapsulates batch execution with caching.
// Both CLI and preview server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store batch results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// task is one unit of batch work.
type task struct {
	spec   chart.Spec
	format string
}

// Execute renders every (chart, format) pair of the batch to disk.
//
// Per-chart failures are recorded in the result and do not abort the
// batch; a non-nil error means the batch could not run at all (bad
// options, unwritable output directory, canceled context).
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{
		RunID:     uuid.NewString(),
		OutputDir: opts.OutputDir,
	}
	logger := opts.Logger.With("run", result.RunID)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", opts.OutputDir)
	}

	tasks := make([]task, 0, len(opts.Specs)*len(opts.Formats))
	for _, spec := range opts.Specs {
		for _, format := range opts.Formats {
			tasks = append(tasks, task{spec: spec, format: format})
		}
	}
	observability.Render().OnBatchStart(ctx, result.RunID, len(opts.Specs), opts.Formats)
	logger.Info("starting batch", "charts", len(opts.Specs), "formats", opts.Formats, "workers", opts.Workers)

	result.Charts = make([]ChartResult, len(tasks))
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			result.Charts[i] = r.runTask(ctx, t, opts, logger)
		}(i, t)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Dashboard {
		for _, format := range opts.Formats {
			result.Dashboard = append(result.Dashboard, r.runDashboard(ctx, format, opts, logger))
		}
	}

	result.Duration = time.Since(start)
	failed := len(result.Failed())
	observability.Render().OnBatchComplete(ctx, result.RunID, failed, result.Duration)
	logger.Info("batch complete",
		"written", result.Succeeded(),
		"failed", failed,
		"cache_hits", result.CacheHits(),
		"duration", result.Duration)

	return result, nil
}

// runTask renders one artifact and writes it under the output directory.
func (r *Runner) runTask(ctx context.Context, t task, opts Options, logger *log.Logger) ChartResult {
	start := time.Now()
	cr := ChartResult{
		ChartID: t.spec.ID,
		Format:  t.format,
		Path:    filepath.Join(opts.OutputDir, t.spec.ID+"."+t.format),
	}
	if err := ctx.Err(); err != nil {
		cr.Err = err
		return cr
	}

	observability.Render().OnChartStart(ctx, t.spec.ID, t.format)
	data, cached, err := r.RenderArtifact(ctx, t.spec, t.format, opts)
	if err == nil {
		err = os.WriteFile(cr.Path, data, 0644)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", cr.Path)
		}
	}
	cr.Size = len(data)
	cr.Cached = cached
	cr.Duration = time.Since(start)
	cr.Err = err
	observability.Render().OnChartComplete(ctx, t.spec.ID, t.format, cr.Size, cr.Duration, err)

	if err != nil {
		logger.Error("chart failed", "id", t.spec.ID, "format", t.format, "err", err)
	} else {
		logger.Debug("chart written", "id", t.spec.ID, "format", t.format,
			"bytes", cr.Size, "cached", cached, "duration", cr.Duration)
	}
	return cr
}

// RenderArtifact produces one artifact for a spec, consulting the cache
// first unless opts.Refresh is set. The bool reports a cache hit.
func (r *Runner) RenderArtifact(ctx context.Context, spec chart.Spec, format string, opts Options) ([]byte, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}
	if opts.Scale <= 0 {
		opts.Scale = chart.RenderScale
	}

	specHash, err := specHash(spec)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	var data []byte
	switch format {
	case FormatHTML:
		data, err = interactive.Render(spec)
	case FormatPNG:
		data, err = static.Render(spec, static.WithScale(opts.Scale))
	}
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	return data, false, nil
}

// runDashboard composes and writes one dashboard artifact.
func (r *Runner) runDashboard(ctx context.Context, format string, opts Options, logger *log.Logger) ChartResult {
	start := time.Now()
	cr := ChartResult{
		ChartID: DashboardBasename,
		Format:  format,
		Path:    filepath.Join(opts.OutputDir, DashboardBasename+"."+format),
	}

	observability.Render().OnDashboardStart(ctx, format, len(opts.Specs))
	data, cached, err := r.RenderDashboardArtifact(ctx, format, opts)
	if err == nil {
		err = os.WriteFile(cr.Path, data, 0644)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", cr.Path)
		}
	}
	cr.Size = len(data)
	cr.Cached = cached
	cr.Duration = time.Since(start)
	cr.Err = err
	observability.Render().OnDashboardComplete(ctx, format, cr.Duration, err)

	if err != nil {
		logger.Error("dashboard failed", "format", format, "err", err)
	} else {
		logger.Debug("dashboard written", "format", format, "bytes", cr.Size,
			"cached", cached, "duration", cr.Duration)
	}
	return cr
}

// RenderDashboardArtifact composes every spec of the batch into one
// dashboard artifact, consulting the cache first unless opts.Refresh is
// set. The bool reports a cache hit.
func (r *Runner) RenderDashboardArtifact(ctx context.Context, format string, opts Options) ([]byte, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}
	if opts.Scale <= 0 {
		opts.Scale = chart.RenderScale
	}

	batchHash, err := batchHash(opts)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.DashboardKey(batchHash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "dashboard")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "dashboard")
	}

	var data []byte
	switch format {
	case FormatHTML:
		data, err = interactive.RenderDashboard(opts.DashboardTitle, opts.Specs)
	case FormatPNG:
		data, err = static.RenderDashboard(opts.DashboardTitle, opts.DashboardSubtitle, opts.Specs, static.WithScale(opts.Scale))
	}
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDashboard)
	observability.Cache().OnCacheSet(ctx, "dashboard", len(data))
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// specHash returns the content hash of a spec's canonical encoding.
// Defaults are applied first so a spec with explicit 1200x600 hashes the
// same as one that relies on the defaults.
func specHash(spec chart.Spec) (string, error) {
	data, err := json.Marshal(spec.WithDefaults())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode spec %s for cache key", spec.ID)
	}
	return cache.Hash(data), nil
}

// batchHash covers every spec of a batch in order plus the dashboard
// titles, so reordering charts or retitling the dashboard re-renders it.
func batchHash(opts Options) (string, error) {
	payload := struct {
		Title    string       `json:"title"`
		Subtitle string       `json:"subtitle"`
		Specs    []chart.Spec `json:"specs"`
	}{opts.DashboardTitle, opts.DashboardSubtitle, opts.Specs}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode batch for cache key")
	}
	return cache.Hash(data), nil
}
