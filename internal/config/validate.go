package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Locality.validate(); err != nil {
		return fmt.Errorf("locality: %w", err)
	}
	if strings.TrimSpace(c.Export.DefaultFileName) == "" {
		return fmt.Errorf("export: default_file_name must not be empty")
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	l.Level = strings.ToLower(l.Level)
	l.Format = strings.ToLower(l.Format)
	if !slices.Contains(logLevels, l.Level) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}

func (l *LocalityConfig) validate() error {
	u, err := url.Parse(l.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", l.BaseURL)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	if l.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", l.Concurrency)
	}
	return nil
}
