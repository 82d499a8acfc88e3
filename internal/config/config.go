// Package config loads CLI-wide settings (log level, metrics listen
// address, worker count) via Viper, binding environment variables and
// an optional config file on top of the defaults from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the flashcodec CLI's runtime settings.
type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogEncoding   string `mapstructure:"log_encoding"`
	MetricsAddr   string `mapstructure:"metrics_addr"`
	Workers       int    `mapstructure:"workers"`
	EnableMetrics bool   `mapstructure:"enable_metrics"`
}

// Default returns the baseline configuration before any file or
// environment overrides are applied.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogEncoding:   "json",
		MetricsAddr:   ":9090",
		Workers:       1,
		EnableMetrics: false,
	}
}

// Load builds a Viper instance seeded with defaults, an optional
// config file at path (ignored if empty or missing), and FLASHCODEC_*
// environment variable overrides, then unmarshals it into a Config.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_encoding", def.LogEncoding)
	v.SetDefault("metrics_addr", def.MetricsAddr)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("enable_metrics", def.EnableMetrics)

	v.SetEnvPrefix("flashcodec")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
