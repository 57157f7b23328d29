package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Board   BoardConfig
	Receipt ReceiptConfig
	Log     LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// APIConfig holds the backend API settings
type APIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	MaxResponseSize int64
}

// SessionConfig holds the local session persistence settings
type SessionConfig struct {
	File string
}

// BoardConfig holds the order board settings
type BoardConfig struct {
	PageSize   int
	DateFilter string // day, week, month, year
	CacheTTL   time.Duration
}

// ReceiptConfig holds the receipt rendering settings
type ReceiptConfig struct {
	PDFEnabled bool
	Timeout    time.Duration
	NoSandbox  bool
	RemoteURL  string // remote Chrome instance; empty launches a local one
	OutputDir  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with POS_ prefix (e.g., POS_API_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tiendapos")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		API: APIConfig{
			BaseURL:         v.GetString("api.base_url"),
			Timeout:         v.GetDuration("api.timeout"),
			MaxResponseSize: v.GetInt64("api.max_response_size"),
		},
		Session: SessionConfig{
			File: v.GetString("session.file"),
		},
		Board: BoardConfig{
			PageSize:   v.GetInt("board.page_size"),
			DateFilter: v.GetString("board.date_filter"),
			CacheTTL:   v.GetDuration("board.cache_ttl"),
		},
		Receipt: ReceiptConfig{
			PDFEnabled: v.GetBool("receipt.pdf_enabled"),
			Timeout:    v.GetDuration("receipt.timeout"),
			NoSandbox:  v.GetBool("receipt.no_sandbox"),
			RemoteURL:  v.GetString("receipt.remote_url"),
			OutputDir:  v.GetString("receipt.output_dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "tiendapos-terminal"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:3001"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 15 * time.Second
	}
	if cfg.API.MaxResponseSize == 0 {
		cfg.API.MaxResponseSize = 10 << 20 // 10MB
	}
	if cfg.Session.File == "" {
		cfg.Session.File = "session.json"
	}
	if cfg.Board.PageSize == 0 {
		cfg.Board.PageSize = 200
	}
	if cfg.Board.DateFilter == "" {
		cfg.Board.DateFilter = "week"
	}
	if cfg.Board.CacheTTL == 0 {
		cfg.Board.CacheTTL = 30 * time.Second
	}
	if cfg.Receipt.Timeout == 0 {
		cfg.Receipt.Timeout = 30 * time.Second
	}
	if cfg.Receipt.OutputDir == "" {
		cfg.Receipt.OutputDir = "receipts"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be a valid absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}
	if c.Board.PageSize <= 0 {
		return fmt.Errorf("board.page_size must be positive")
	}
	switch c.Board.DateFilter {
	case "day", "week", "month", "year":
	default:
		return fmt.Errorf("board.date_filter must be one of day, week, month, year")
	}
	if c.App.Env == "production" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use https in production")
	}
	return nil
}
