package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Berucha/FitStreak/internal/app"
	"github.com/Berucha/FitStreak/internal/tracker"
)

// Config holds the application configuration.
type Config struct {
	StorePath           string `mapstructure:"store_path"`
	DefaultGoal         int    `mapstructure:"default_goal"`
	HistoryDisplayLimit int    `mapstructure:"history_display_limit"`
	NoColor             bool   `mapstructure:"no_color"`
}

// Load reads configuration from file, environment variables, and defaults.
// A missing config file is fine; an explicitly named one must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("store_path", "")
	v.SetDefault("default_goal", tracker.DefaultGoal)
	v.SetDefault("history_display_limit", 30)
	v.SetDefault("no_color", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "fitstreak"))
		}
		if base, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(base, "fitstreak"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: FITSTREAK_STORE_PATH, FITSTREAK_DEFAULT_GOAL, etc.
	v.SetEnvPrefix("FITSTREAK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.StorePath == "" {
		path, err := app.DefaultStorePath()
		if err != nil {
			return nil, err
		}
		cfg.StorePath = path
	}
	return cfg, nil
}
