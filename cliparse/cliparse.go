package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Supported database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// ConfigFileEnv names the env variable pointing at an optional YAML config file
const ConfigFileEnv = "LEADERBOARD_CONFIG"

type Config struct {
	Port            int           `koanf:"port"`
	DatabaseURL     string        `koanf:"database_url"`
	DatabaseType    string        `koanf:"database_type"`
	DatabaseSSLMode string        `koanf:"database_sslmode"`
	AdminSecret     string        `koanf:"admin_secret"`
	TopLimit        int           `koanf:"top_limit"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	LogLevel        string        `koanf:"log_level"`
	CORSOrigin      string        `koanf:"cors_origin"`
}

// envKeys maps recognised environment variables to config keys.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"PORT":             "port",
	"DATABASE_URL":     "database_url",
	"DATABASE_TYPE":    "database_type",
	"DATABASE_SSLMODE": "database_sslmode",
	"ADMIN_SECRET":     "admin_secret",
	"TOP_LIMIT":        "top_limit",
	"REQUEST_TIMEOUT":  "request_timeout",
	"LOG_LEVEL":        "log_level",
	"CORS_ORIGIN":      "cors_origin",
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:           5000,
		DatabaseType:   DatabasePostgres,
		TopLimit:       9,
		RequestTimeout: 5 * time.Second,
		LogLevel:       "info",
		CORSOrigin:     "*",
	}
}

// LoadDotEnv loads a .env file if one exists. Variables already set in the
// environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags layers defaults, an optional YAML file, env variables and CLI
// flags (lowest to highest precedence) and validates the result
func ParseFlags(args []string) (Config, error) {
	var (
		configPath string
		flagCfg    Config
	)

	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)

	fs.StringVar(&configPath, "config", "", "Path to YAML config file")

	// Network config (can be CLI args or env)
	fs.IntVar(&flagCfg.Port, "p", 0, "Server port")
	fs.StringVar(&flagCfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flagCfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&flagCfg.DatabaseSSLMode, "sslmode", "", "Postgres sslmode appended when the URL has none")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&flagCfg.AdminSecret, "admin-secret", "", "Admin secret for DELETE /scores (prefer env)")

	fs.IntVar(&flagCfg.TopLimit, "limit", 0, "Number of entries served by GET /scores")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Per-request storage timeout")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")

	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		return envKeys[s]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	// Explicit flags override everything else
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = flagCfg.Port
		case "d":
			cfg.DatabaseURL = flagCfg.DatabaseURL
		case "t":
			cfg.DatabaseType = flagCfg.DatabaseType
		case "sslmode":
			cfg.DatabaseSSLMode = flagCfg.DatabaseSSLMode
		case "admin-secret":
			cfg.AdminSecret = flagCfg.AdminSecret
		case "limit":
			cfg.TopLimit = flagCfg.TopLimit
		case "timeout":
			cfg.RequestTimeout = flagCfg.RequestTimeout
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		}
	})

	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required values and ranges
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType != DatabasePostgres && c.DatabaseType != DatabaseSQLite {
		return fmt.Errorf("unsupported database type %q", c.DatabaseType)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TopLimit < 1 {
		return errors.New("top limit must be positive")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}
