package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	ShutdownTimeout   time.Duration
	ScrapeConcurrency int
	RenderTimeout     time.Duration
	RenderSettle      time.Duration
	AllowedOrigins    []string
	ChromeHeadless    bool
}

const (
	defaultRunAddress        = ":5000"
	defaultShutdownTimeout   = 10 * time.Second
	defaultScrapeConcurrency = 1
	defaultRenderTimeout     = 30 * time.Second
	defaultRenderSettle      = 2 * time.Second
	defaultAllowedOrigins    = "*"
)

// Load parses configuration from an optional .env file, environment variables
// and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ScrapeConcurrency: getInt(lookup, "SCRAPE_CONCURRENCY", defaultScrapeConcurrency),
		RenderTimeout:     getDuration(lookup, "RENDER_TIMEOUT", defaultRenderTimeout),
		RenderSettle:      getDuration(lookup, "RENDER_SETTLE", defaultRenderSettle),
		ChromeHeadless:    getBool(lookup, "CHROME_HEADLESS", true),
	}

	origins := getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)

	fs := flag.NewFlagSet("shopscrape", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		renderTimeoutStr   = cfg.RenderTimeout.String()
		renderSettleStr    = cfg.RenderSettle.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.IntVar(&cfg.ScrapeConcurrency, "scrape-concurrency", cfg.ScrapeConcurrency, "Concurrent page extractions per scrape call")
	fs.StringVar(&renderTimeoutStr, "render-timeout", renderTimeoutStr, "Per-reference page render timeout")
	fs.StringVar(&renderSettleStr, "render-settle", renderSettleStr, "Wait after navigation for scripts to populate the page")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&origins, "allowed-origins", origins, "Comma separated list of CORS origins")
	fs.BoolVar(&cfg.ChromeHeadless, "headless", cfg.ChromeHeadless, "Run the browser headless")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RenderTimeout, err = time.ParseDuration(renderTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid render timeout: %w", err)
	}

	if cfg.RenderSettle, err = time.ParseDuration(renderSettleStr); err != nil {
		return nil, fmt.Errorf("invalid render settle: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigins}
	}

	if cfg.ScrapeConcurrency <= 0 {
		cfg.ScrapeConcurrency = defaultScrapeConcurrency
	}

	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = defaultRenderTimeout
	}

	if cfg.RenderSettle < 0 {
		cfg.RenderSettle = defaultRenderSettle
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
