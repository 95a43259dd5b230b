package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/city-insights/internal/infra/insightsapi"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Backend   BackendConfig   `yaml:"backend"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the limiter in front of the command routes.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// BackendConfig points at the insights backend.
type BackendConfig struct {
	// BaseURL is the explicit override; empty means resolve from the page.
	BaseURL string `yaml:"baseUrl"`
	// Timeout of zero waits for the transport's own limits.
	Timeout time.Duration `yaml:"timeout"`
}

// DashboardConfig controls presentation and the fallback set.
type DashboardConfig struct {
	Title        string        `yaml:"title"`
	PublicURL    string        `yaml:"publicUrl"`
	FallbackPath string        `yaml:"fallbackPath"`
	Locale       string        `yaml:"locale"`
	CardDelay    time.Duration `yaml:"cardDelay"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Backend.Timeout = parsed
		}
	}
	if v := os.Getenv("DASHBOARD_TITLE"); v != "" {
		cfg.Dashboard.Title = v
	}
	if v := os.Getenv("DASHBOARD_PUBLIC_URL"); v != "" {
		cfg.Dashboard.PublicURL = v
	}
	if v := os.Getenv("DASHBOARD_FALLBACK_PATH"); v != "" {
		cfg.Dashboard.FallbackPath = v
	}
	if v := os.Getenv("DASHBOARD_LOCALE"); v != "" {
		cfg.Dashboard.Locale = v
	}
	if v := os.Getenv("DASHBOARD_CARD_DELAY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Dashboard.CardDelay = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:     ":8080",
			ReadTimeout: 5 * time.Second,
			// the refresh command waits for the whole ETL run
			WriteTimeout: 5 * time.Minute,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             5,
			},
		},
		Backend: BackendConfig{},
		Dashboard: DashboardConfig{
			Title:     "City Sustainability Insights",
			Locale:    "pt-BR",
			CardDelay: 120 * time.Millisecond,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Backend.Timeout < 0 {
		return errors.New("backend.timeout cannot be negative")
	}
	if v := strings.TrimSpace(c.Backend.BaseURL); v != "" && !strings.Contains(v, "://") {
		return errors.New("backend.baseUrl must be an absolute URL")
	}
	if _, err := insightsapi.ParsePageLocation(c.Dashboard.PublicURL); err != nil {
		return fmt.Errorf("dashboard.publicUrl: %w", err)
	}
	if strings.TrimSpace(c.Dashboard.Title) == "" {
		return errors.New("dashboard.title cannot be empty")
	}
	if c.Dashboard.CardDelay < 0 {
		return errors.New("dashboard.cardDelay cannot be negative")
	}
	return nil
}
