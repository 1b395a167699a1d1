package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StrategyPlain    = "plain"
	StrategyMarkdown = "markdown"

	defaultModel          = "gpt-4o-2024-08-06"
	defaultMaxUploadBytes = 10 << 20
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	OpenAIAPIKey       string        `validate:"required"`
	OpenAIBaseURL      string        `validate:"omitempty,url"`
	LLMModel           string        `validate:"required"`
	OpenAITimeout      time.Duration `validate:"gt=0"`
	ExtractionStrategy string        `validate:"oneof=plain markdown"`
	ScratchDir         string
	MaxUploadBytes     int64    `validate:"gt=0"`
	RateLimitRPS       float64  `validate:"gte=0"`
	RateLimitBurst     int      `validate:"gte=0"`
	LogLevel           string   `validate:"oneof=debug info warn error"`
	TrustedProxies     []string `validate:"omitempty,dive,cidr|ip"`

	// invalid holds variables that were set but could not be parsed.
	invalid []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var invalid []string
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:      strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		LLMModel:           getEnv("LLM_MODEL", defaultModel),
		OpenAITimeout:      time.Duration(getInt("OPENAI_TIMEOUT_SECONDS", 120, &invalid)) * time.Second,
		ExtractionStrategy: normalizeStrategy(getEnv("EXTRACTION_STRATEGY", StrategyPlain)),
		ScratchDir:         getEnv("SCRATCH_DIR", os.TempDir()),
		MaxUploadBytes:     int64(getInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes, &invalid)),
		RateLimitRPS:       getFloat("RATE_LIMIT_RPS", 0, &invalid),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 5, &invalid),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		TrustedProxies:     splitAndTrim(getEnv("TRUSTED_PROXIES", "")),
	}
	cfg.invalid = invalid
	return cfg
}

// Validate reports startup misconfiguration, such as a missing OPENAI_API_KEY.
func (c Config) Validate() error {
	msgs := append([]string(nil), c.invalid...)
	if err := validator.New().Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: %s", envName(fe.Field()), describe(fe)))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

var envNames = map[string]string{
	"OpenAIAPIKey":       "OPENAI_API_KEY",
	"OpenAIBaseURL":      "OPENAI_BASE_URL",
	"LLMModel":           "LLM_MODEL",
	"OpenAITimeout":      "OPENAI_TIMEOUT_SECONDS",
	"ExtractionStrategy": "EXTRACTION_STRATEGY",
	"MaxUploadBytes":     "MAX_UPLOAD_BYTES",
	"RateLimitRPS":       "RATE_LIMIT_RPS",
	"RateLimitBurst":     "RATE_LIMIT_BURST",
	"LogLevel":           "LOG_LEVEL",
	"TrustedProxies":     "TRUSTED_PROXIES",
}

func envName(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		field = field[:i]
	}
	if name, ok := envNames[field]; ok {
		return name
	}
	return field
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a valid URL"
	case "cidr|ip":
		return "must be an IP address or CIDR range"
	default:
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getInt returns def when key is unset. A value that does not parse is
// recorded in invalid so Validate can report it.
func getInt(key string, def int, invalid *[]string) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		*invalid = append(*invalid, fmt.Sprintf("%s: %q is not an integer", key, raw))
		return def
	}
	return parsed
}

func getFloat(key string, def float64, invalid *[]string) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*invalid = append(*invalid, fmt.Sprintf("%s: %q is not a number", key, raw))
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

// normalizeStrategy keeps unknown values as-is so Validate can report them.
func normalizeStrategy(raw string) string {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "md", StrategyMarkdown:
		return StrategyMarkdown
	case "", "text", StrategyPlain:
		return StrategyPlain
	default:
		return s
	}
}
