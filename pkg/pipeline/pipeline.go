// Package pipeline provides the core batch rendering pipeline for capviz.
//
// This package turns a set of chart specifications into artifact files
// on disk. Both CLI and preview server render through it, which keeps
// caching and output naming consistent across entry points.
//
// # Architecture
//
// A batch expands into one task per (chart, format) pair. Tasks are
// independent of each other and run on a bounded worker pool; a chart
// that fails to render is recorded in the batch result without stopping
// the rest of the batch. After all per-chart artifacts are written, the
// dashboard artifacts are composed from the same specs.
//
// # Usage
//
// Create a Runner and execute a batch:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Specs:     catalog.Charts(),
//	    OutputDir: "graphics",
//	    Formats:   []string{"html", "png"},
//	    Dashboard: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, cr := range result.Failed() {
//	    log.Error("chart failed", "id", cr.ChartID, "err", cr.Err)
//	}
//
// Render a single artifact without touching disk:
//
//	data, cached, err := runner.RenderArtifact(ctx, spec, "png", opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jefffranzen/capviz/pkg/cache"
	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWorkers is the worker pool size for batch rendering. Charts
	// are independent, so the pool exists only to bound memory use.
	DefaultWorkers = 4

	// DefaultOutputDir is where artifacts land unless overridden.
	DefaultOutputDir = "graphics"

	// DashboardBasename is the filename stem of the composed dashboard
	// artifacts, e.g. executive_dashboard.html.
	DashboardBasename = "executive_dashboard"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Batch Configuration
// =============================================================================

// Options contains all configuration for one batch render.
type Options struct {
	// Specs are the charts to render, in dashboard order.
	Specs []chart.Spec `json:"specs"`

	// OutputDir receives one file per (chart, format) pair.
	OutputDir string `json:"output_dir,omitempty"`

	// Formats selects the artifact types to produce.
	Formats []string `json:"formats,omitempty"`

	// Dashboard additionally composes every chart into
	// executive_dashboard artifacts.
	Dashboard         bool   `json:"dashboard,omitempty"`
	DashboardTitle    string `json:"dashboard_title,omitempty"`
	DashboardSubtitle string `json:"dashboard_subtitle,omitempty"`

	// Refresh bypasses the cache and re-renders everything.
	Refresh bool `json:"refresh,omitempty"`

	// Workers bounds render concurrency.
	Workers int `json:"workers,omitempty"`

	// Scale is the raster supersampling factor for PNG output.
	Scale int `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Specs) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "at least one chart is required")
	}
	seen := make(map[string]bool, len(o.Specs))
	for _, spec := range o.Specs {
		if seen[spec.ID] {
			return errors.New(errors.ErrCodeInvalidSpec, "duplicate chart id: %q", spec.ID)
		}
		seen[spec.ID] = true
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML, FormatPNG}
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if err := errors.ValidateOutputPath(o.OutputDir); err != nil {
		return err
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Scale <= 0 {
		o.Scale = chart.RenderScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact format.
// Scale only distinguishes raster artifacts.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// ChartResult records the outcome for one (chart, format) task.
type ChartResult struct {
	ChartID  string
	Format   string
	Path     string
	Size     int
	Cached   bool
	Duration time.Duration
	Err      error
}

// Result contains the outputs of one batch run.
type Result struct {
	// RunID uniquely identifies this batch run in logs.
	RunID string

	// OutputDir is where the artifacts were written.
	OutputDir string

	// Charts holds one entry per (chart, format) task in task order.
	Charts []ChartResult

	// Dashboard holds the dashboard artifact results, if requested.
	Dashboard []ChartResult

	// Duration is the wall time for the whole batch.
	Duration time.Duration
}

// Failed returns every task that ended in an error.
func (r *Result) Failed() []ChartResult {
	var failed []ChartResult
	for _, cr := range r.Charts {
		if cr.Err != nil {
			failed = append(failed, cr)
		}
	}
	for _, cr := range r.Dashboard {
		if cr.Err != nil {
			failed = append(failed, cr)
		}
	}
	return failed
}

// Succeeded returns the number of artifacts written.
func (r *Result) Succeeded() int {
	n := 0
	for _, cr := range r.Charts {
		if cr.Err == nil {
			n++
		}
	}
	for _, cr := range r.Dashboard {
		if cr.Err == nil {
			n++
		}
	}
	return n
}

// CacheHits returns the number of artifacts served from cache.
func (r *Result) CacheHits() int {
	n := 0
	for _, cr := range r.Charts {
		if cr.Err == nil && cr.Cached {
			n++
		}
	}
	for _, cr := range r.Dashboard {
		if cr.Err == nil && cr.Cached {
			n++
		}
	}
	return n
}
