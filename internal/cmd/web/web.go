// Package web wires the site command to the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/merpara/site/internal/platform/cmd"
	"github.com/merpara/site/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	CatalogPath         string        `env:"WEB_CATALOG_PATH"`
	SessionDBPath       string        `env:"WEB_SESSION_DB_PATH"`
	SessionTTL          time.Duration `env:"WEB_SESSION_TTL" envDefault:"2h"`
	SweepInterval       time.Duration `env:"WEB_SWEEP_INTERVAL" envDefault:"10m"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogPath, "catalog-path", cfg.CatalogPath, "YAML package catalog (built-in tiers when empty)")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "SQLite cart database (in-memory when empty)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle time before a cart expires")
	fs.DurationVar(&cfg.SweepInterval, "sweep-interval", cfg.SweepInterval, "Interval between expired cart sweeps")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto from a trusted proxy")
}

// Run starts the marketing site server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			CatalogPath:         cfg.CatalogPath,
			SessionDBPath:       cfg.SessionDBPath,
			SessionTTL:          cfg.SessionTTL,
			SweepInterval:       cfg.SweepInterval,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
