package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.MaxLoanAmount != 1e9 {
		t.Errorf("expected max loan amount 1e9, got %g", cfg.MaxLoanAmount)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %s", cfg.RequestTimeout)
	}
	if cfg.OTELServiceName != "loan-calculator" {
		t.Errorf("unexpected service name %q", cfg.OTELServiceName)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_LOAN_AMOUNT", "5000000")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.MaxLoanAmount != 5e6 {
		t.Errorf("expected max loan amount 5e6, got %g", cfg.MaxLoanAmount)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: 7000\nlog_format: console\nrequest_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Port)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("expected console format, got %q", cfg.LogFormat)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.RequestTimeout)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:           8000,
		MaxLoanAmount:  1e9,
		RequestTimeout: time.Second,
		LogLevel:       "info",
		LogFormat:      "json",
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }, wantError: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantError: true},
		{name: "negative max amount", mutate: func(c *Config) { c.MaxLoanAmount = -1 }, wantError: true},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantError: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantError: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
