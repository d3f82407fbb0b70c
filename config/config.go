// Package config loads the application configuration from a YAML file,
// layered over built-in defaults. A missing file is not an error; the
// defaults run the app standalone.
package config

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "4s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StoreConfig controls preference persistence.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// QuoteConfig controls the quote endpoint client.
type QuoteConfig struct {
	URL       string   `yaml:"url"`
	Timeout   Duration `yaml:"timeout"`
	PerMinute int      `yaml:"per_minute"`
}

// AudioConfig controls sound synthesis.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Config is the full application configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Store StoreConfig `yaml:"store"`
	Quote QuoteConfig `yaml:"quote"`
	Audio AudioConfig `yaml:"audio"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Path: "greetburst.db",
		},
		Quote: QuoteConfig{
			URL:       "https://api.quotable.io/random",
			Timeout:   Duration(4 * time.Second),
			PerMinute: 6,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Quote.Timeout <= 0 {
		return fmt.Errorf("quote timeout must be positive, got %v", c.Quote.Timeout.Std())
	}
	if c.Quote.PerMinute <= 0 {
		return fmt.Errorf("quote per_minute must be positive, got %d", c.Quote.PerMinute)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio master_volume must be in [0,1], got %v", c.Audio.MasterVolume)
	}
	return nil
}
