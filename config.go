package docboost

import (
	"strings"
	"time"
)

// Config holds user configuration loaded from the config file.
type Config struct {
	// DB is the path to the documentation index database.
	DB string `toml:"db"`

	API APIConfig `toml:"api"`

	// Connections maps schema connection names to SQLite database paths.
	Connections map[string]string `toml:"connections"`
}

// APIConfig configures the web documentation source. An empty URL disables
// the source.
type APIConfig struct {
	URL         string   `toml:"url"`
	Source      string   `toml:"source"`
	Concurrency int      `toml:"concurrency"`
	RateLimit   float64  `toml:"rate_limit"`
	Timeout     Duration `toml:"timeout"`
}

// Config defaults.
const (
	DefaultAPISource      = "api"
	DefaultAPIConcurrency = 4
	DefaultAPIRateLimit   = 1.0
	DefaultAPITimeout     = 10 * time.Second
)

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			Source:      DefaultAPISource,
			Concurrency: DefaultAPIConcurrency,
			RateLimit:   DefaultAPIRateLimit,
			Timeout:     Duration(DefaultAPITimeout),
		},
		Connections: map[string]string{},
	}
}

// Duration is a time.Duration written as a string such as "30s" in config
// files.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return Errorf(EINVALID, "invalid duration %q", string(b))
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
