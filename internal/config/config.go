// Package config provides Viper-based configuration loading for the battler.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is where log lines go: "stderr", "stdout", or a file path.
	// The game itself writes to stdout, so stderr or a file keeps the two apart.
	Output string `mapstructure:"output"`
}

// LeaderboardConfig holds leaderboard file settings.
type LeaderboardConfig struct {
	// Path is the leaderboard file. It is created on first use.
	Path string `mapstructure:"path"`
	// MaxRecords is how many records the file keeps.
	MaxRecords int `mapstructure:"max_records"`
}

// ContentConfig holds the locations of static game content.
type ContentConfig struct {
	// PromptsDir holds one <tag>.yaml file per input prompt. Empty uses the prompts
	// built into the binary.
	PromptsDir string `mapstructure:"prompts_dir"`
}

// GameConfig holds game session settings.
type GameConfig struct {
	// Seed makes enemy moves reproducible when non-zero; zero uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// Color enables ANSI colors in game output.
	Color bool `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Content     ContentConfig     `mapstructure:"content"`
	Game        GameConfig        `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLeaderboard(c.Leaderboard); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateLeaderboard(l LeaderboardConfig) error {
	var errs []string
	if l.Path == "" {
		errs = append(errs, "leaderboard.path must not be empty")
	}
	if l.MaxRecords < 1 {
		errs = append(errs, fmt.Sprintf("leaderboard.max_records must be >= 1, got %d", l.MaxRecords))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Precondition: path must be empty or a path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with RPS_ prefix
	v.SetEnvPrefix("RPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("leaderboard.path", "scores.txt")
	v.SetDefault("leaderboard.max_records", 10)

	v.SetDefault("content.prompts_dir", "")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.color", true)
}
