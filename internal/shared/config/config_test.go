package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:               "8080",
		Env:                "dev",
		OpenAIAPIKey:       "sk-test",
		LLMModel:           defaultModel,
		OpenAITimeout:      time.Minute,
		ExtractionStrategy: StrategyPlain,
		MaxUploadBytes:     1 << 20,
		LogLevel:           "info",
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("EXTRACTION_STRATEGY", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LLMModel != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, cfg.LLMModel)
	}
	if cfg.ExtractionStrategy != StrategyPlain {
		t.Fatalf("expected plain strategy, got %q", cfg.ExtractionStrategy)
	}
	if cfg.OpenAITimeout != 120*time.Second {
		t.Fatalf("expected 120s timeout, got %s", cfg.OpenAITimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "OPENAI_API_KEY=from-file\nEXTRACTION_STRATEGY=markdown\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("OPENAI_API_KEY", "from-env")
	t.Setenv("EXTRACTION_STRATEGY", "")
	os.Unsetenv("EXTRACTION_STRATEGY")

	cfg := Load()
	if cfg.OpenAIAPIKey != "from-env" {
		t.Fatalf("expected env to win over .env, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.ExtractionStrategy != StrategyMarkdown {
		t.Fatalf("expected markdown from .env, got %q", cfg.ExtractionStrategy)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing api key", mutate: func(c *Config) { c.OpenAIAPIKey = "" }, wantErr: "OPENAI_API_KEY: is required"},
		{name: "unknown strategy", mutate: func(c *Config) { c.ExtractionStrategy = "ocr" }, wantErr: "EXTRACTION_STRATEGY"},
		{name: "bad base url", mutate: func(c *Config) { c.OpenAIBaseURL = "not a url" }, wantErr: "OPENAI_BASE_URL"},
		{name: "zero upload limit", mutate: func(c *Config) { c.MaxUploadBytes = 0 }, wantErr: "MAX_UPLOAD_BYTES"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "LOG_LEVEL"},
		{name: "trusted proxy cidr", mutate: func(c *Config) { c.TrustedProxies = []string{"10.0.0.0/8", "192.0.2.1"} }},
		{name: "bad trusted proxy", mutate: func(c *Config) { c.TrustedProxies = []string{"gateway"} }, wantErr: "TRUSTED_PROXIES: must be an IP address or CIDR range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadReportsUnparsableNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_UPLOAD_BYTES", "10MB")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg := Load()
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("expected default upload limit, got %d", cfg.MaxUploadBytes)
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected unparsable values to fail validation")
	}
	for _, want := range []string{`MAX_UPLOAD_BYTES: "10MB" is not an integer`, `RATE_LIMIT_RPS: "fast" is not a number`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error containing %q, got %v", want, err)
		}
	}
}

func TestNormalizeStrategy(t *testing.T) {
	tests := map[string]string{
		"":         StrategyPlain,
		"PLAIN":    StrategyPlain,
		" md ":     StrategyMarkdown,
		"markdown": StrategyMarkdown,
		"ocr":      "ocr",
	}
	for in, want := range tests {
		if got := normalizeStrategy(in); got != want {
			t.Fatalf("normalizeStrategy(%q) = %q, want %q", in, got, want)
		}
	}
}
