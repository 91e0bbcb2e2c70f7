package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	APIKey          string
	CORSAllowOrigin []string
	DatabaseURL     string
	LLMEnabled      bool
	LLMBaseURL      string
	LLMModel        string
	LLMTimeout      time.Duration
	LLMMaxTokens    int
	LogFilePath     string
	RateLimitRPS    float64
	RateLimitBurst  int
	AuditBuffer     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	loadEnvFiles(".env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	apiKey := strings.TrimSpace(os.Getenv("API_KEY"))
	if env == "production" && apiKey == "" {
		log.Printf("API_KEY is empty; all endpoints are unauthenticated")
	}

	return Config{
		Port:            getEnv("PORT", "8000"),
		Env:             env,
		APIKey:          apiKey,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		DatabaseURL:     getEnv("DATABASE_URL", "data/app.db"),
		LLMEnabled:      getEnvBool("LLM_ENABLED", true),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "http://localhost:8081/v1"),
		LLMModel:        getEnv("LLM_MODEL", ""),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		LLMMaxTokens:    getEnvInt("LLM_MAX_TOKENS", 50),
		LogFilePath:     getEnv("LOG_FILE_PATH", "logs/app.jsonl"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		AuditBuffer:     getEnvInt("AUDIT_BUFFER", 256),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		log.Printf("config %s invalid bool %q, using %v", key, raw, def)
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid number %q, using %v", key, raw, def)
		return def
	}
	return val
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
