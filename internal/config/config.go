// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Defaults applied when the config file leaves a field unset.
const (
	DefaultRefreshSeconds = 10
	DefaultCacheFile      = "showtimes_cache.json"
	DefaultLanguage       = "en"
	DefaultCountry        = "us"
)

// Config is the root configuration structure.
type Config struct {
	APIKey         string    `toml:"api_key"`
	RefreshSeconds int       `toml:"refresh_interval"`
	CacheFile      string    `toml:"cache_file"`
	LogLevel       string    `toml:"log_level"`
	TZOffsetHours  *float64  `toml:"timezone_offset_hours"`
	Locale         Locale    `toml:"locale"`
	Theaters       []Theater `toml:"theaters"`
}

// Locale carries the search locale parameters passed through to the API.
type Locale struct {
	Language string `toml:"hl"`
	Country  string `toml:"gl"`
}

// Theater is one configured theater query.
type Theater struct {
	Name     string `toml:"name"`
	Location string `toml:"location"`
}

// Load reads, substitutes, parses, and validates the configuration file.
// Any failure here is fatal to the caller: the display loop never starts
// on a bad config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RefreshSeconds == 0 {
		c.RefreshSeconds = DefaultRefreshSeconds
	}
	if c.CacheFile == "" {
		c.CacheFile = DefaultCacheFile
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Locale.Language == "" {
		c.Locale.Language = DefaultLanguage
	}
	if c.Locale.Country == "" {
		c.Locale.Country = DefaultCountry
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names that could not be resolved.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return out, missing
}
