package config

import (
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Port          string
	Environment   string
	DatabaseURL   string
	SupabaseURL   string
	SupabaseKey   string
	JWKSURL       string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	SessionCookie string
	CORSOrigins   string
	TablePrefix   string
	// Logging
	LogDir      string
	LogMaxFiles int
	// Reject moves into a folder owned by another team
	StrictFolderScope bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	supabaseURL := strings.TrimRight(getEnv("SUPABASE_URL", ""), "/")

	jwksURL := ""
	if supabaseURL != "" {
		jwksURL = supabaseURL + "/auth/v1/.well-known/jwks.json"
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SupabaseURL:       supabaseURL,
		SupabaseKey:       getEnv("SUPABASE_KEY", ""),
		JWKSURL:           jwksURL,
		SessionCookie:     getEnv("SESSION_COOKIE", "sb-access-token"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       getTablePrefix(env),
		LogDir:            getEnv("LOG_DIR", ""),
		LogMaxFiles:       getEnvInt("LOG_MAX_FILES", 10),
		StrictFolderScope: getEnv("STRICT_FOLDER_SCOPE", "false") == "true",
	}
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required, validation.In("dev", "test", "prod")),
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.DatabaseURL, validation.Required),
		validation.Field(&c.JWKSURL, validation.Required.Error("is required (set SUPABASE_URL)")),
		validation.Field(&c.LogMaxFiles, validation.Min(1)),
	)
}

// CORSOriginList splits CORSOrigins on commas, dropping blanks
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
