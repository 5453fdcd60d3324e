// Package cli implements the capviz command-line interface.
//
// This package provides commands for rendering the CAP evaluation chart
// catalog (or charts loaded from a TOML manifest) into interactive HTML
// and static PNG artifacts, serving live previews, and managing the
// artifact cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Produce HTML and PNG artifacts for charts plus the dashboard
//   - list: Show every chart in the built-in catalog
//   - serve: Run a local preview server for the chart set
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jefffranzen/capviz/pkg/buildinfo"
	"github.com/jefffranzen/capviz/pkg/cache"
	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/chart/catalog"
	"github.com/jefffranzen/capviz/pkg/errors"
	"github.com/jefffranzen/capviz/pkg/manifest"
	"github.com/jefffranzen/capviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "capviz"

	// redisAddrEnv selects a Redis cache backend when set.
	redisAddrEnv = "CAPVIZ_REDIS_ADDR"
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
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "capviz",
		Short:        "Capviz renders the CAP evaluation chart suite",
		Long:         `Capviz is a CLI tool for generating the Community Adaptation Program evaluation graphics: interactive HTML charts for review and presentation-quality PNGs for slide decks, plus a combined executive dashboard.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. scope namespaces cache
// keys per chart source (empty for the built-in catalog).
func (c *CLI) newRunner(ctx context.Context, noCache bool, scope string) (*pipeline.Runner, error) {
	store, err := newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv(redisAddrEnv); addr != "" {
		return cache.NewRedisCache(ctx, addr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/capviz/).
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
// Chart Sources
// =============================================================================

// chartSource is a resolved set of charts plus dashboard titles and the
// cache scope for the source.
type chartSource struct {
	specs    []chart.Spec
	title    string
	subtitle string
	scope    string
}

// loadSource resolves the chart set for a command: the TOML manifest when
// given, the built-in catalog otherwise. ids filters the set, preserving
// the order the ids were given in.
func loadSource(manifestPath string, ids []string) (*chartSource, error) {
	src := &chartSource{
		specs:    catalog.Charts(),
		title:    catalog.DashboardTitle,
		subtitle: catalog.DashboardSubtitle,
	}
	if manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		src.specs = m.Charts
		src.subtitle = m.Subtitle
		if m.Title != "" {
			src.title = m.Title
		}
		abs, err := filepath.Abs(manifestPath)
		if err != nil {
			abs = manifestPath
		}
		src.scope = "manifest:" + cache.Hash([]byte(abs))[:8] + ":"
	}
	if len(ids) == 0 {
		return src, nil
	}

	byID := make(map[string]chart.Spec, len(src.specs))
	for _, spec := range src.specs {
		byID[spec.ID] = spec
	}
	picked := make([]chart.Spec, 0, len(ids))
	for _, id := range ids {
		spec, ok := byID[id]
		if !ok {
			return nil, errors.New(errors.ErrCodeChartNotFound, "unknown chart: %q (run 'capviz list')", id)
		}
		picked = append(picked, spec)
	}
	src.specs = picked
	return src, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML, pipeline.FormatPNG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
