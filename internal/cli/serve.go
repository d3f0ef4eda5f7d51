package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/nettopo/topograph/internal/server"
)

// serveConfig is the optional TOML configuration for the serve command:
//
//	listen = ":8080"
//
//	[source]
//	kind             = "redis"
//	file             = "topology.toml"
//	redis_addr       = "localhost:6379"
//	mongo_uri        = "mongodb://localhost:27017"
//	mongo_db         = "topograph"
//	mongo_collection = "adjacencies"
//
// Values present in the file override the corresponding flag defaults.
type serveConfig struct {
	Listen string `toml:"listen"`
	Source struct {
		Kind      string `toml:"kind"`
		File      string `toml:"file"`
		RedisAddr string `toml:"redis_addr"`
		MongoURI  string `toml:"mongo_uri"`
		MongoDB   string `toml:"mongo_db"`
		MongoColl string `toml:"mongo_collection"`
	} `toml:"source"`
}

// serveCommand creates the serve command: expose topology inference as an
// HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve topology trees over HTTP",
		Long: `Serve topology trees over HTTP.

Routes:
  GET /healthz
  GET /api/v1/devices
  GET /api/v1/devices/{device}/root
  GET /api/v1/devices/{device}/tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := loadServeConfig(configPath)
				if err != nil {
					return err
				}
				c.applyServeConfig(cfg, &listen)
			}
			return c.runServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")

	return cmd
}

// loadServeConfig reads and decodes the TOML config at path.
func loadServeConfig(path string) (*serveConfig, error) {
	var cfg serveConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyServeConfig copies non-empty config values over the flag defaults.
func (c *CLI) applyServeConfig(cfg *serveConfig, listen *string) {
	if cfg.Listen != "" {
		*listen = cfg.Listen
	}
	if cfg.Source.Kind != "" {
		c.sourceKind = cfg.Source.Kind
	}
	if cfg.Source.File != "" {
		c.filePath = cfg.Source.File
	}
	if cfg.Source.RedisAddr != "" {
		c.redisAddr = cfg.Source.RedisAddr
	}
	if cfg.Source.MongoURI != "" {
		c.mongoURI = cfg.Source.MongoURI
	}
	if cfg.Source.MongoDB != "" {
		c.mongoDB = cfg.Source.MongoDB
	}
	if cfg.Source.MongoColl != "" {
		c.mongoColl = cfg.Source.MongoColl
	}
}

// runServe starts the HTTP server and shuts it down when ctx is canceled.
func (c *CLI) runServe(ctx context.Context, listen string) error {
	src, closer, err := c.newSource(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := &http.Server{
		Addr:    listen,
		Handler: server.New(src, c.Logger).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", listen, "source", c.sourceKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
