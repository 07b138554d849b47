package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheertaboi/minimal-shop/pkg/db"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceMemory   = "memory"
)

type Config struct {
	Addr          string
	LogLevel      string
	CatalogSource string
	InboxStore    string
	Locale        string
	SessionTTL    time.Duration
	Postgres      db.PostgresConfig
}

// Load reads configuration from the environment, after merging a .env file
// when one is present. Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Addr:          getenv("HTTP_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		CatalogSource: getenv("CATALOG_SOURCE", SourceStatic),
		InboxStore:    getenv("INBOX_STORE", SourceMemory),
		Locale:        getenv("SHOP_LOCALE", "ru"),
		SessionTTL:    2 * time.Hour,
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	switch cfg.CatalogSource {
	case SourceStatic, SourcePostgres:
	default:
		return cfg, fmt.Errorf("invalid CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	switch cfg.InboxStore {
	case SourceMemory, SourcePostgres:
	default:
		return cfg, fmt.Errorf("invalid INBOX_STORE %q", cfg.InboxStore)
	}

	pg, err := db.LoadPostgresConfig()
	if err != nil {
		return cfg, err
	}
	cfg.Postgres = pg

	if cfg.NeedsPostgres() && !pg.Configured() {
		return cfg, fmt.Errorf("postgres requested but DB_HOST/DB_NAME are not set")
	}
	return cfg, nil
}

func (c Config) NeedsPostgres() bool {
	return c.CatalogSource == SourcePostgres || c.InboxStore == SourcePostgres
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
