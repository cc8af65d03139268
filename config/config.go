// Package config loads process configuration from the environment and an
// optional .env file in the working directory.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all process-level settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DataDir is the directory of the Pebble database.
	DataDir string

	// SyncWrites controls per-write fsync on the database.
	SyncWrites bool

	// Dev switches the logger to human-readable console output.
	Dev bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variables take precedence over file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 4000)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("SYNC_WRITES", true)
	v.SetDefault("DEV", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: reading .env: %w", err)
		}
	}

	cfg := Config{
		Port:       v.GetInt("PORT"),
		DataDir:    v.GetString("DATA_DIR"),
		SyncWrites: v.GetBool("SYNC_WRITES"),
		Dev:        v.GetBool("DEV"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	if cfg.DataDir == "" {
		return Config{}, fmt.Errorf("config: data dir must not be empty")
	}
	return cfg, nil
}
