// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeminiConfig provides settings for the Gemini model client.
type GeminiConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetGeminiTemperature() float32
}

// DataConfig provides locations of the read-only startup data files.
type DataConfig interface {
	GetCatalogPath() string
	GetPriceRulesPath() string
	GetReferenceCSVPath() string
	GetPromptsDir() string
}

// ChatConfig provides settings for the conversation orchestrator.
type ChatConfig interface {
	GetChatMaxToolCalls() int
	GetChatRequestTimeout() time.Duration
	GetChatRateLimit() float64
	GetChatRateBurst() int
}

// InteractionsConfig provides settings for the interaction log stores.
type InteractionsConfig interface {
	GetLogsDir() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	GeminiAPIKey       string
	GeminiModel        string
	GeminiTemperature  float32
	CatalogPath        string
	PriceRulesPath     string
	ReferenceCSVPath   string
	PromptsDir         string
	LogsDir            string
	ChatMaxToolCalls   int
	ChatRequestTimeout time.Duration
	ChatRateLimit      float64
	ChatRateBurst      int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeminiConfig implementation
func (c *Config) GetGeminiAPIKey() string       { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string        { return c.GeminiModel }
func (c *Config) GetGeminiTemperature() float32 { return c.GeminiTemperature }

// DataConfig implementation
func (c *Config) GetCatalogPath() string      { return c.CatalogPath }
func (c *Config) GetPriceRulesPath() string   { return c.PriceRulesPath }
func (c *Config) GetReferenceCSVPath() string { return c.ReferenceCSVPath }
func (c *Config) GetPromptsDir() string       { return c.PromptsDir }

// ChatConfig implementation
func (c *Config) GetChatMaxToolCalls() int            { return c.ChatMaxToolCalls }
func (c *Config) GetChatRequestTimeout() time.Duration { return c.ChatRequestTimeout }
func (c *Config) GetChatRateLimit() float64           { return c.ChatRateLimit }
func (c *Config) GetChatRateBurst() int               { return c.ChatRateBurst }

// InteractionsConfig implementation
func (c *Config) GetLogsDir() string { return c.LogsDir }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTemperature:  float32(mustFloat(getEnv("GEMINI_TEMPERATURE", "0.2"))),
		CatalogPath:        getEnv("CATALOG_PATH", "data/catalog.json"),
		PriceRulesPath:     getEnv("PRICE_RULES_PATH", "data/price_rules.json"),
		ReferenceCSVPath:   getEnv("REFERENCE_CSV_PATH", "data/IKEA_SA_Furniture_Web_Scrapings_sss.csv"),
		PromptsDir:         getEnv("PROMPTS_DIR", "me"),
		LogsDir:            getEnv("LOGS_DIR", "logs"),
		ChatMaxToolCalls:   mustInt(getEnv("CHAT_MAX_TOOL_CALLS", "8")),
		ChatRequestTimeout: mustDuration(getEnv("CHAT_REQUEST_TIMEOUT", "60s")),
		ChatRateLimit:      mustFloat(getEnv("CHAT_RATE_LIMIT", "1")),
		ChatRateBurst:      mustInt(getEnv("CHAT_RATE_BURST", "5")),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.ChatMaxToolCalls < 1 {
		return nil, fmt.Errorf("CHAT_MAX_TOOL_CALLS must be at least 1")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
