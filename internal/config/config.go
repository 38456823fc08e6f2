package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"vixboard/internal/session"
)

type Config struct {
	Exchange struct {
		Name     string `yaml:"name"`
		Timezone string `yaml:"timezone"`
		Open     string `yaml:"open"`
		Close    string `yaml:"close"`
	} `yaml:"exchange"`
	Feed struct {
		// BaseURL points at the static site's data directory; Dir reads the
		// same files from local disk instead. Exactly one must be set.
		BaseURL        string  `yaml:"base_url"`
		Dir            string  `yaml:"dir"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec"`
		// DiscoverURL, when set, is an HTML index page crawled for extra
		// *.csv links before loading.
		DiscoverURL string `yaml:"discover_url"`
	} `yaml:"feed"`
	Report struct {
		ExportDir string `yaml:"export_dir"`
		Tables    bool   `yaml:"tables"`
	} `yaml:"report"`
	PollSeconds int `yaml:"poll_seconds"`
	Log         struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Tracing bool   `yaml:"tracing"`
	} `yaml:"log"`
}

func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" && c.Feed.Dir == "" {
		return fmt.Errorf("feed: one of base_url or dir must be set")
	}
	if c.Feed.BaseURL != "" && c.Feed.Dir != "" {
		return fmt.Errorf("feed: base_url and dir are mutually exclusive")
	}
	// A broken calendar must fail at startup, not at the first tick.
	if _, err := c.Calendar(); err != nil {
		return err
	}
	return nil
}

// Calendar builds the session calendar from the exchange section.
func (c *Config) Calendar() (*session.Calendar, error) {
	return session.NewCalendar(c.Exchange.Timezone, c.Exchange.Open, c.Exchange.Close)
}

// FeedTimeout returns the fetch timeout as a duration.
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// PollInterval returns the status refresh cadence.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Exchange.Name == "" {
		c.Exchange.Name = "CBOE"
	}
	if c.Exchange.Timezone == "" {
		c.Exchange.Timezone = "America/New_York"
	}
	if c.Exchange.Open == "" {
		c.Exchange.Open = "09:30"
	}
	if c.Exchange.Close == "" {
		c.Exchange.Close = "16:00"
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = 30
	}
	if c.Feed.RatePerSec == 0 {
		c.Feed.RatePerSec = 4
	}
	if c.PollSeconds == 0 {
		c.PollSeconds = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
