package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// CORS policy modes. Wildcard mirrors the public-API deployment where any
// origin may call the endpoints; allowlist restricts to configured origins.
const (
	CORSModeWildcard  = "wildcard"
	CORSModeAllowlist = "allowlist"
)

type Config struct {
	ServerPort int
	Env        string
	Database   DatabaseConfig

	// JWTSecret signs session tokens. There is no built-in fallback:
	// the server refuses to start without one.
	JWTSecret string

	// AdminKey is the shared secret for the admin listing endpoint.
	AdminKey string

	CORSMode       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

func Load() (Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "stemify"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "stemify_db"),
		UseSSL:   getEnvBool("DB_SSL", false),
	}

	cfg := Config{
		ServerPort:     getEnvInt("SERVER_PORT", 8080),
		Env:            getEnv("ENV", "production"),
		Database:       dbConfig,
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminKey:       strings.TrimSpace(os.Getenv("ADMIN_KEY")),
		CORSMode:       getEnv("CORS_MODE", CORSModeWildcard),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", nil),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminKey == "" {
		return Config{}, fmt.Errorf("ADMIN_KEY is required")
	}
	switch cfg.CORSMode {
	case CORSModeWildcard:
	case CORSModeAllowlist:
		if len(cfg.AllowedOrigins) == 0 {
			return Config{}, fmt.Errorf("ALLOWED_ORIGINS is required when CORS_MODE=%s", CORSModeAllowlist)
		}
	default:
		return Config{}, fmt.Errorf("unknown CORS_MODE %q", cfg.CORSMode)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
