package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	dashservice "github.com/zappabad/sentimentdash/internal/dashboard/service"
	"github.com/zappabad/sentimentdash/internal/httputil"
	"github.com/zappabad/sentimentdash/internal/logging"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/internal/stock/client"
)

// EnvPrefix prefixes every environment override, e.g. DASHBOARD_API_BASE_URL.
const EnvPrefix = "DASHBOARD"

// Config holds configuration for the dashboard.
type Config struct {
	// API is the configuration for the stock API client.
	API client.Config
	// Dashboard is the configuration for the dashboard service.
	Dashboard dashservice.Config
	// RefreshInterval triggers a periodic refresh; 0 disables it.
	RefreshInterval time.Duration
	// Locale selects number grouping and clock style.
	Locale language.Tag
	// Log is the configuration for the diagnostic log.
	Log logging.Config
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		API:       client.DefaultConfig(),
		Dashboard: dashservice.DefaultConfig(),
		Locale:    language.AmericanEnglish,
		Log:       logging.DefaultConfig(),
	}
}

// Load builds a Config from defaults, an optional YAML file at path and
// DASHBOARD_* environment variables (a .env file in the working directory
// is loaded first when present).
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	def := DefaultConfig()
	v := viper.New()

	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("api.retry.max_attempts", def.API.Retry.MaxAttempts)
	v.SetDefault("api.retry.base_delay", def.API.Retry.BaseDelay)
	v.SetDefault("api.retry.max_delay", def.API.Retry.MaxDelay)
	v.SetDefault("symbols", symbolStrings(def.Dashboard.Symbols))
	v.SetDefault("cycle_timeout", def.Dashboard.CycleTimeout)
	v.SetDefault("refresh_interval", def.RefreshInterval)
	v.SetDefault("locale", def.Locale.String())
	v.SetDefault("events.buffer", def.Dashboard.EventBuffer)
	v.SetDefault("events.drop", def.Dashboard.DropEvents)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	symbols, err := parseSymbols(symbolEntries(v))
	if err != nil {
		return Config{}, err
	}
	locale, err := language.Parse(v.GetString("locale"))
	if err != nil {
		return Config{}, fmt.Errorf("locale: %w", err)
	}

	cfg := Config{
		API: client.Config{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
			Retry: httputil.RetryConfig{
				MaxAttempts: v.GetInt("api.retry.max_attempts"),
				BaseDelay:   v.GetDuration("api.retry.base_delay"),
				MaxDelay:    v.GetDuration("api.retry.max_delay"),
			},
		},
		Dashboard: dashservice.Config{
			Symbols:      symbols,
			CycleTimeout: v.GetDuration("cycle_timeout"),
			EventBuffer:  v.GetInt("events.buffer"),
			DropEvents:   v.GetBool("events.drop"),
		},
		RefreshInterval: v.GetDuration("refresh_interval"),
		Locale:          locale,
		Log: logging.Config{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the dashboard cannot run with.
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q must be an absolute http(s) URL", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}
	if c.API.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("api.retry.max_attempts must be at least 1, got %d", c.API.Retry.MaxAttempts))
	}
	if c.Dashboard.CycleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("cycle_timeout must be positive, got %s", c.Dashboard.CycleTimeout))
	}
	if c.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("refresh_interval must not be negative, got %s", c.RefreshInterval))
	}
	if len(c.Dashboard.Symbols) == 0 {
		errs = append(errs, dashservice.ErrNoSymbols)
	}
	seen := make(map[string]bool, len(c.Dashboard.Symbols))
	for _, sym := range c.Dashboard.Symbols {
		if seen[sym.Ticker] {
			errs = append(errs, fmt.Errorf("duplicate symbol %s", sym.Ticker))
		}
		seen[sym.Ticker] = true
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// symbolEntries keeps names with spaces intact when symbols come from a
// single comma separated environment value.
func symbolEntries(v *viper.Viper) []string {
	if raw, ok := v.Get("symbols").(string); ok {
		return strings.Split(raw, ",")
	}
	return v.GetStringSlice("symbols")
}

// parseSymbols accepts "TICKER" or "TICKER:Name" entries; an entry may hold
// several comma separated symbols.
func parseSymbols(raw []string) ([]stock.Symbol, error) {
	var out []stock.Symbol
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			sym, err := stock.ParseSymbol(part)
			if err != nil {
				return nil, fmt.Errorf("symbols: %w", err)
			}
			out = append(out, sym)
		}
	}
	return out, nil
}

func symbolStrings(symbols []stock.Symbol) []string {
	out := make([]string, len(symbols))
	for i, sym := range symbols {
		out[i] = sym.Ticker
		if sym.Name != "" {
			out[i] += ":" + sym.Name
		}
	}
	return out
}
