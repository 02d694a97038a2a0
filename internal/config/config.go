package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `env:"ENV" env-default:"dev" toml:"env" yaml:"env"`
	Server    HTTPServer      `env-prefix:"SERVER_" toml:"server" yaml:"server"`
	Data      DataConfig      `env-prefix:"DATA_" toml:"data" yaml:"data"`
	Dashboard DashboardConfig `env-prefix:"DASHBOARD_" toml:"dashboard" yaml:"dashboard"`
	CORS      CORSConfig      `env-prefix:"CORS_" toml:"cors" yaml:"cors"`
}

type HTTPServer struct {
	Port    string        `env:"PORT" env-default:"8080" toml:"port" yaml:"port"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"5s" toml:"timeout" yaml:"timeout"`
}

// DataConfig points at the directory the external collection job writes to.
type DataConfig struct {
	Dir            string `env:"DIR" env-default:"data" toml:"dir" yaml:"dir"`
	PRFile         string `env:"PR_FILE" env-default:"pr_data.csv" toml:"pr_file" yaml:"pr_file"`
	MetricsFile    string `env:"METRICS_FILE" env-default:"metrics.json" toml:"metrics_file" yaml:"metrics_file"`
	LastUpdateFile string `env:"LAST_UPDATE_FILE" env-default:"last_update.txt" toml:"last_update_file" yaml:"last_update_file"`
}

type DashboardConfig struct {
	TableLimit  int    `env:"TABLE_LIMIT" env-default:"15" toml:"table_limit" yaml:"table_limit"`
	TopAuthors  int    `env:"TOP_AUTHORS" env-default:"10" toml:"top_authors" yaml:"top_authors"`
	MarkerLabel string `env:"MARKER_LABEL" env-default:"data contract" toml:"marker_label" yaml:"marker_label"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"*" toml:"allowed_origins" yaml:"allowed_origins"`
}

// MustLoad reads configuration from CONFIG_PATH when set (TOML or YAML),
// otherwise from the environment.
func MustLoad() *Config {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("failed to read config file " + path + ": " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}
