// Package cli implements the topograph command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/pkg/buildinfo"
	"github.com/nettopo/topograph/pkg/cache"
	"github.com/nettopo/topograph/pkg/source"
)

// appName is the application name used for directories and display.
const appName = "topograph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Source backends selectable with --source.
const (
	sourceExample = "example"
	sourceFile    = "file"
	sourceRedis   = "redis"
	sourceMongo   = "mongo"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Source selection, bound as persistent flags on the root command.
	sourceKind string
	filePath   string
	redisAddr  string
	mongoURI   string
	mongoDB    string
	mongoColl  string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Topograph infers network topology trees from neighbor-discovery data",
		Long:         `Topograph builds a hierarchical view of a network from flat neighbor-discovery adjacencies: it finds the nearest backbone (P/PE) router for a target device and grows a spanning tree of dependent devices beneath it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Every command's context carries the CLI logger.
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.sourceKind, "source", sourceExample, "adjacency backend: example, file, redis, mongo")
	pf.StringVar(&c.filePath, "file", "", "TOML adjacency file (source=file)")
	pf.StringVar(&c.redisAddr, "redis-addr", "localhost:6379", "redis address (source=redis)")
	pf.StringVar(&c.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb URI (source=mongo)")
	pf.StringVar(&c.mongoDB, "mongo-db", "topograph", "mongodb database (source=mongo)")
	pf.StringVar(&c.mongoColl, "mongo-collection", "adjacencies", "mongodb collection (source=mongo)")
	pf.BoolVar(&c.noCache, "no-cache", false, "bypass the neighbor lookup cache")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.rootCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Source Factory
// =============================================================================

// closerFunc adapts a cleanup closure to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// newSource builds the adjacency source selected by the persistent flags.
// Remote backends (redis, mongo) are wrapped in the lookup cache unless
// --no-cache is set; the in-memory backends are never cached.
func (c *CLI) newSource(ctx context.Context) (source.Source, io.Closer, error) {
	switch c.sourceKind {
	case sourceExample:
		return source.Example(), closerFunc(func() error { return nil }), nil

	case sourceFile:
		if c.filePath == "" {
			return nil, nil, fmt.Errorf("--file is required with --source=file")
		}
		src, err := source.LoadFile(c.filePath)
		if err != nil {
			return nil, nil, err
		}
		return src, closerFunc(func() error { return nil }), nil

	case sourceRedis:
		src, err := source.DialRedis(ctx, c.redisAddr)
		if err != nil {
			return nil, nil, err
		}
		return c.withCache(src), closerFunc(src.Close), nil

	case sourceMongo:
		src, err := source.DialMongo(ctx, c.mongoURI, c.mongoDB, c.mongoColl)
		if err != nil {
			return nil, nil, err
		}
		return c.withCache(src), closerFunc(func() error { return src.Close(context.Background()) }), nil

	default:
		return nil, nil, fmt.Errorf("unknown source: %s (must be example, file, redis, or mongo)", c.sourceKind)
	}
}

// withCache wraps src in the file-backed lookup cache. Cache setup failures
// degrade to no caching rather than failing the command.
func (c *CLI) withCache(src source.Source) source.Source {
	if c.noCache {
		return src
	}
	dir, err := cacheDir()
	if err != nil {
		return src
	}
	fc, err := cache.NewFile(dir)
	if err != nil {
		return src
	}
	return source.NewCached(src, fc)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/topograph/).
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
