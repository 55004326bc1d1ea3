// Package config loads the bridge settings from an optional YAML file and
// the HOMEY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvToken    = "HOMEY_TOKEN"
	EnvAddress  = "HOMEY_ADDRESS"
	EnvHomeyID  = "HOMEY_ID"
	EnvLogLevel = "HOMEY_LOG_LEVEL"
)

// ErrMissingToken is fatal at startup. A missing address is not: the
// bridge starts degraded and reports the dial error.
var ErrMissingToken = errors.New("HOMEY_TOKEN is required")

// Config holds every setting of the bridge.
type Config struct {
	Token          string        `mapstructure:"token"`
	Address        string        `mapstructure:"address"`
	HomeyID        string        `mapstructure:"homey_id"`
	LogLevel       string        `mapstructure:"log_level"`
	AdvancedFlows  bool          `mapstructure:"advanced_flows"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:       "info",
		AdvancedFlows:  true,
		RequestTimeout: 30 * time.Second,
		ConnectTimeout: 10 * time.Second,
	}
}

// Load reads path (if not empty) over the defaults, then applies the
// environment. Environment values win over the file.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := decode(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	override(&cfg.Token, getenv(EnvToken))
	override(&cfg.Address, getenv(EnvAddress))
	override(&cfg.HomeyID, getenv(EnvHomeyID))
	override(&cfg.LogLevel, getenv(EnvLogLevel))

	return cfg, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the settings that must be present before starting.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Redacted returns a copy safe for logging.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = "****"
	}
	return c
}
