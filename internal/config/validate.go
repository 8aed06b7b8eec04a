package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.APIKey == "" {
		errs = append(errs, "api_key: required")
	}

	if c.RefreshSeconds < 1 {
		errs = append(errs, fmt.Sprintf("refresh_interval: must be a positive number of seconds, got %d", c.RefreshSeconds))
	}

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if len(c.Theaters) == 0 {
		errs = append(errs, "theaters: at least one theater must be configured")
	}
	for i, th := range c.Theaters {
		if th.Name == "" {
			errs = append(errs, fmt.Sprintf("theaters[%d].name: required", i))
		}
	}

	return errs
}
