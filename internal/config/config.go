package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Locality LocalityConfig `yaml:"locality"`
	Export   ExportConfig   `yaml:"export"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"    env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LocalityConfig holds settings of the region/city lookup.
type LocalityConfig struct {
	BaseURL     string        `yaml:"base_url"    env:"LOCALITY_BASE_URL"    env-default:"https://servicodados.ibge.gov.br/api/v1/localidades"`
	Timeout     time.Duration `yaml:"timeout"     env:"LOCALITY_TIMEOUT"     env-default:"10s"`
	Concurrency int           `yaml:"concurrency" env:"LOCALITY_CONCURRENCY" env-default:"8"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	DefaultFileName string `yaml:"default_file_name" env:"EXPORT_DEFAULT_FILE_NAME" env-default:"clientes.csv"`
}
