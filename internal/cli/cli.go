// Package cli implements the permtree command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/internal/config"
	"github.com/matzehuels/permtree/pkg/bench"
	"github.com/matzehuels/permtree/pkg/buildinfo"
	"github.com/matzehuels/permtree/pkg/cache"
	"github.com/matzehuels/permtree/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "permtree"
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

	// Config is loaded in the root command's PersistentPreRunE. Commands
	// that run without the root (tests) see the defaults.
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "permtree enumerates and indexes permutations",
		Long: `permtree builds the tree of all orderings of an alphabet, enumerates them
in lexicographic order, and looks up the permutation at a 1-based rank either by
enumeration or directly through the factorial number system.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.installHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/permtree/config.toml)")

	// Register all subcommands
	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.factorialCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes observability events to the debug log.
func (c *CLI) installHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetBenchHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

// =============================================================================
// Report Store Factory
// =============================================================================

// newStore opens the report store selected by the config. noCache forces
// the null backend. A configured prefix scopes every report key.
func (c *CLI) newStore(ctx context.Context, noCache bool) (*bench.Store, error) {
	backend, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return bench.NewStore(backend, c.keyer(), c.Config.Cache.TTL), nil
}

func (c *CLI) keyer() cache.Keyer {
	keyer := cache.NewDefaultKeyer()
	if prefix := c.Config.Cache.Prefix; prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, prefix)
	}
	return keyer
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, reports will not be stored", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, c.Config.Cache.URL, dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/permtree/).
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
