package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Durations are kept as
// strings in the file and parsed through the accessor methods; Validate
// guarantees they parse.
type Config struct {
	Schedule struct {
		EquityTick string `yaml:"equity_tick"`
		CryptoTick string `yaml:"crypto_tick"`
		MacroTick  string `yaml:"macro_tick"`
		NewsPoll   string `yaml:"news_poll"`
		Report     string `yaml:"report"`
	} `yaml:"schedule"`
	News struct {
		EquityMinInterval string  `yaml:"equity_min_interval"`
		CryptoMinInterval string  `yaml:"crypto_min_interval"`
		FireProbability   float64 `yaml:"fire_probability"`
	} `yaml:"news"`
	Portfolio struct {
		StartingCash float64 `yaml:"starting_cash"`
		StateFile    string  `yaml:"state_file"`
	} `yaml:"portfolio"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	CatalogPath string `yaml:"catalog_path"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EQUITY_TICK"); v != "" {
		cfg.Schedule.EquityTick = v
	}
	if v := os.Getenv("CRYPTO_TICK"); v != "" {
		cfg.Schedule.CryptoTick = v
	}
	if v := os.Getenv("MACRO_TICK"); v != "" {
		cfg.Schedule.MacroTick = v
	}
	if v := os.Getenv("NEWS_POLL"); v != "" {
		cfg.Schedule.NewsPoll = v
	}
	if v := os.Getenv("STARTING_CASH"); v != "" {
		if cash, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.StartingCash = cash
		}
	}
	if v := os.Getenv("PORTFOLIO_STATE_FILE"); v != "" {
		cfg.Portfolio.StateFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}

	// Defaults
	if cfg.Schedule.EquityTick == "" {
		cfg.Schedule.EquityTick = "1s"
	}
	if cfg.Schedule.CryptoTick == "" {
		cfg.Schedule.CryptoTick = "2s"
	}
	if cfg.Schedule.MacroTick == "" {
		cfg.Schedule.MacroTick = "10s"
	}
	if cfg.Schedule.NewsPoll == "" {
		cfg.Schedule.NewsPoll = "5s"
	}
	if cfg.Schedule.Report == "" {
		cfg.Schedule.Report = "1m"
	}
	if cfg.News.EquityMinInterval == "" {
		cfg.News.EquityMinInterval = "2m"
	}
	if cfg.News.CryptoMinInterval == "" {
		cfg.News.CryptoMinInterval = "3m"
	}
	if cfg.News.FireProbability == 0 {
		cfg.News.FireProbability = 0.8
	}
	if cfg.Portfolio.StartingCash == 0 {
		cfg.Portfolio.StartingCash = 10000
	}
	if cfg.Portfolio.StateFile == "" {
		cfg.Portfolio.StateFile = "data/portfolio.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/marketforge.db"
	}

	return cfg, nil
}

// Validate checks that every duration parses and every knob is in range.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"schedule.equity_tick":     c.Schedule.EquityTick,
		"schedule.crypto_tick":     c.Schedule.CryptoTick,
		"schedule.macro_tick":      c.Schedule.MacroTick,
		"schedule.news_poll":       c.Schedule.NewsPoll,
		"schedule.report":          c.Schedule.Report,
		"news.equity_min_interval": c.News.EquityMinInterval,
		"news.crypto_min_interval": c.News.CryptoMinInterval,
	} {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.News.FireProbability <= 0 || c.News.FireProbability > 1 {
		return fmt.Errorf("news.fire_probability must be in (0,1]")
	}
	if c.Portfolio.StartingCash <= 0 {
		return fmt.Errorf("portfolio.starting_cash must be positive")
	}
	return nil
}

// Duration accessors; safe after Validate.

func (c *Config) EquityTick() time.Duration { return mustDuration(c.Schedule.EquityTick) }
func (c *Config) CryptoTick() time.Duration { return mustDuration(c.Schedule.CryptoTick) }
func (c *Config) MacroTick() time.Duration  { return mustDuration(c.Schedule.MacroTick) }
func (c *Config) NewsPoll() time.Duration   { return mustDuration(c.Schedule.NewsPoll) }
func (c *Config) Report() time.Duration     { return mustDuration(c.Schedule.Report) }

func (c *Config) EquityNewsInterval() time.Duration { return mustDuration(c.News.EquityMinInterval) }
func (c *Config) CryptoNewsInterval() time.Duration { return mustDuration(c.News.CryptoMinInterval) }

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return time.Second
	}
	return d
}
