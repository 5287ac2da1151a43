package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/zappabad/sentimentdash/internal/stock"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default base url, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Retry.MaxAttempts != 1 {
		t.Errorf("expected no retries by default, got %d attempts", cfg.API.Retry.MaxAttempts)
	}
	want := []stock.Symbol{{Ticker: "AAPL", Name: "Apple"}, {Ticker: "GOOGL", Name: "Google"}, {Ticker: "MSFT", Name: "Microsoft"}}
	if len(cfg.Dashboard.Symbols) != len(want) {
		t.Fatalf("expected %d symbols, got %v", len(want), cfg.Dashboard.Symbols)
	}
	for i := range want {
		if cfg.Dashboard.Symbols[i] != want[i] {
			t.Errorf("symbol %d: expected %v, got %v", i, want[i], cfg.Dashboard.Symbols[i])
		}
	}
	if cfg.RefreshInterval != 0 {
		t.Errorf("expected auto refresh disabled, got %s", cfg.RefreshInterval)
	}
	if cfg.Locale.String() != language.AmericanEnglish.String() {
		t.Errorf("expected en-US, got %s", cfg.Locale)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DASHBOARD_API_BASE_URL", "https://api.example.test")
	t.Setenv("DASHBOARD_API_TIMEOUT", "3s")
	t.Setenv("DASHBOARD_SYMBOLS", "tsla:Tesla Motors, nvda")
	t.Setenv("DASHBOARD_REFRESH_INTERVAL", "30s")
	t.Setenv("DASHBOARD_LOCALE", "de-DE")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("unexpected base url %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.API.Timeout)
	}
	if len(cfg.Dashboard.Symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %v", cfg.Dashboard.Symbols)
	}
	if cfg.Dashboard.Symbols[0] != (stock.Symbol{Ticker: "TSLA", Name: "Tesla Motors"}) {
		t.Errorf("unexpected first symbol %v", cfg.Dashboard.Symbols[0])
	}
	if cfg.Dashboard.Symbols[1].Ticker != "NVDA" {
		t.Errorf("unexpected second symbol %v", cfg.Dashboard.Symbols[1])
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("expected 30s refresh, got %s", cfg.RefreshInterval)
	}
	if cfg.Locale.String() != "de-DE" {
		t.Errorf("expected de-DE, got %s", cfg.Locale)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "dashboard.yaml")
	body := `
api:
  base_url: http://127.0.0.1:9000
  retry:
    max_attempts: 3
    base_delay: 100ms
symbols:
  - AMZN:Amazon
  - META
log:
  file: ""
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9000" {
		t.Errorf("unexpected base url %s", cfg.API.BaseURL)
	}
	if cfg.API.Retry.MaxAttempts != 3 || cfg.API.Retry.BaseDelay != 100*time.Millisecond {
		t.Errorf("unexpected retry %+v", cfg.API.Retry)
	}
	if len(cfg.Dashboard.Symbols) != 2 || cfg.Dashboard.Symbols[0].Label() != "Amazon (AMZN)" {
		t.Errorf("unexpected symbols %v", cfg.Dashboard.Symbols)
	}
	if cfg.Log.File != "" {
		t.Errorf("expected logging disabled, got %q", cfg.Log.File)
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	bad := DefaultConfig()
	bad.API.BaseURL = "localhost:8000"
	bad.API.Timeout = 0
	bad.Dashboard.Symbols = append(bad.Dashboard.Symbols, stock.Symbol{Ticker: "AAPL"})
	bad.Log.Level = "loud"

	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"api.base_url", "api.timeout", "duplicate symbol AAPL", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}

	empty := DefaultConfig()
	empty.Dashboard.Symbols = nil
	if err := empty.Validate(); err == nil {
		t.Error("expected error for empty symbol set")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent to testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
