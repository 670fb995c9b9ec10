// Package config loads stargen defaults from a YAML file, a .env file and
// STARGEN_* environment variables.
//
// Precedence, lowest first: Default(), YAML file, environment, command-line
// flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variable names.
const (
	EnvConfig   = "STARGEN_CONFIG"
	EnvName     = "STARGEN_NAME"
	EnvLogLevel = "STARGEN_LOG_LEVEL"
	EnvColor    = "STARGEN_COLOR"
	EnvFormat   = "STARGEN_FORMAT"
	EnvStrict   = "STARGEN_STRICT"
	EnvSeed     = "STARGEN_SEED"
)

// Config holds the user-tunable defaults.
type Config struct {
	// Name used when --name is not given.
	Name string `yaml:"name"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// Format is text or json.
	Format string `yaml:"format"`
	// Strict rejects unrecognized class/type/body text instead of defaulting.
	Strict bool `yaml:"strict"`
	// Seed is a UUID, "new", or empty for unseeded output.
	Seed string `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:     "NONAME",
		LogLevel: "warn",
		Color:    ColorAuto,
		Format:   FormatText,
	}
}

// Load reads YAML from path on top of Default() and applies the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.ResolveEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// FromEnv returns Default() with the environment applied.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := cfg.ResolveEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ResolveEnv overrides fields from STARGEN_* variables that are set.
func (c *Config) ResolveEnv() error {
	if v, ok := os.LookupEnv(EnvName); ok && v != "" {
		c.Name = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		c.Color = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		c.Seed = v
	}
	if v, ok := os.LookupEnv(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.Strict = strict
	}
	return nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file without overriding ones already
// set. A missing file is not an error; the result reports whether it loaded.
func LoadDotEnv(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}
