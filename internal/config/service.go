package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServiceConfig holds the runtime configuration for the HTTP server.
type ServiceConfig struct {
	Port            int
	LogLevel        string
	AllowedOrigins  []string
	AssumptionsFile string
}

// LoadService reads service configuration from the environment. A .env
// file is honored when present for local development.
func LoadService() *ServiceConfig {
	_ = godotenv.Load()

	return &ServiceConfig{
		Port:            getEnvInt("PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:  splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AssumptionsFile: getEnv("ASSUMPTIONS_FILE", ""),
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
