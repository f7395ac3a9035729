// Package cli implements the plotsync command-line interface.
//
// This package provides commands for solving room specifications into
// floorplans, re-validating existing floorplans, checking specification
// feasibility, serving the HTTP API, and managing the solve cache. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Run the full pipeline on a specification file
//   - validate: Re-run the multi-pass gate over a floorplan file
//   - check: Report specification feasibility without solving
//   - serve: Run the HTTP API
//   - cache: Manage the solve cache
//
// # Logging
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

	"github.com/Indusoptima/plotsync-sub001/pkg/buildinfo"
	"github.com/Indusoptima/plotsync-sub001/pkg/cache"
	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "plotsync"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "plotsync",
		Short:        "PlotSync generates architectural floorplans from room specifications",
		Long:         `PlotSync is a CLI tool that turns a room specification and a building envelope into a validated floorplan: optimized room placement, synthesized walls, and doors and windows with resolved swing arcs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the cache backend shared by solve and serve.
type cacheFlags struct {
	noCache   bool
	backend   string
	redisAddr string
	mongoURI  string
}

// register adds the cache flags to cmd.
func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.backend, "cache-backend", "file", "cache backend: file, redis, mongo")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", envOr("PLOTSYNC_REDIS_ADDR", "localhost:6379"), "redis address for --cache-backend=redis")
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", envOr("PLOTSYNC_MONGO_URI", "mongodb://localhost:27017"), "mongo URI for --cache-backend=mongo")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, flags cacheFlags) (*pipeline.Runner, error) {
	store, err := newCache(ctx, flags)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(ctx context.Context, flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	switch flags.backend {
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: flags.redisAddr})
	case "mongo":
		return cache.NewMongoCache(ctx, cache.MongoConfig{URI: flags.mongoURI})
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/plotsync/).
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
