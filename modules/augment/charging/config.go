package charging

import (
	"fmt"
	"time"
)

// Config holds the configuration for the charging augmenter module.
type Config struct {
	APIKey       string `yaml:"api_key"`
	NominatimURL string `yaml:"nominatim_url"`
	StationsURL  string `yaml:"stations_url"`
	RadiusKM     int    `yaml:"radius_km"`
	MaxResults   int    `yaml:"max_results"`
	UserAgent    string `yaml:"user_agent"`
	Timeout      string `yaml:"timeout"`
}

// defaults fills zero-valued fields with sensible defaults.
func (c *Config) defaults() {
	if c.NominatimURL == "" {
		c.NominatimURL = "https://nominatim.openstreetmap.org/search"
	}
	if c.StationsURL == "" {
		c.StationsURL = "https://api.openchargemap.io/v3/poi/"
	}
	if c.RadiusKM == 0 {
		c.RadiusKM = 50
	}
	if c.MaxResults == 0 {
		c.MaxResults = 10
	}
	if c.UserAgent == "" {
		c.UserAgent = "wattsup-bot"
	}
	if c.Timeout == "" {
		c.Timeout = "15s"
	}
}

// parsedTimeout returns the timeout as a time.Duration.
// Assumes the value has been validated by validateTimeout.
func (c *Config) parsedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// validateTimeout checks that the timeout string is a valid Go duration.
func (c *Config) validateTimeout() error {
	_, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("augment.charging: invalid timeout %q: %w", c.Timeout, err)
	}
	return nil
}
