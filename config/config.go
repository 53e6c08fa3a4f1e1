package config

import (
	"os"
	"strings"
)

// Fallback admin override when ADMIN_PIN is not configured. Deployments
// should always set their own.
const defaultAdminPIN = "ITISESC"

// AppConfig holds everything the process reads from the environment apart
// from the database connection (see db.go).
type AppConfig struct {
	Port        string
	CORSOrigins []string
	// AdminPIN authorizes mutation of any reservation regardless of its
	// individual PIN. Compared case-insensitively.
	AdminPIN  string
	SeedDemo  bool
	LogFormat string
	LogLevel  string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:        envOrDefault("PORT", "8080"),
		CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		AdminPIN:    envOrDefault("ADMIN_PIN", defaultAdminPIN),
		SeedDemo:    strings.EqualFold(envOrDefault("SEED_DEMO", "false"), "true"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
