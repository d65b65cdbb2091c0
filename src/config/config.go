package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-this-is-a-development-only-jwt-secret-key"

type AppConfig struct {
	Port         string
	DatabasePath string
	LogLevel     string
	Environment  string

	JWTSecret         string
	AccessTokenExpiry time.Duration
	AuthEnforced      bool

	// The tracker is single-user; every record belongs to this user.
	DefaultUserID       int64
	DefaultUsername     string
	DefaultUserEmail    string
	DefaultUserPassword string

	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxBodyBytes      int64

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a reverse proxy that overwrites those headers.
	TrustProxy bool

	DisplayCurrency string
}

var Cfg *AppConfig

// IsDevelopment reports whether internal error details may be returned to clients.
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	jwtSecret := getEnv("JWT_SECRET", defaultJWTSecret)
	if jwtSecret == defaultJWTSecret {
		log.Println("WARNING: Using default insecure JWT_SECRET. Set JWT_SECRET environment variable for production.")
	}

	Cfg = &AppConfig{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./fintrack.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Environment:  getEnv("APP_ENV", "production"),

		JWTSecret:         jwtSecret,
		AccessTokenExpiry: getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour),
		AuthEnforced:      getEnvAsBool("AUTH_ENFORCED", false),

		DefaultUserID:       int64(getEnvAsInt("DEFAULT_USER_ID", 1)),
		DefaultUsername:     getEnv("DEFAULT_USERNAME", "demo"),
		DefaultUserEmail:    getEnv("DEFAULT_USER_EMAIL", "demo@fintrack.local"),
		DefaultUserPassword: getEnv("DEFAULT_USER_PASSWORD", "demo-password"),

		AllowedOrigins:    getEnvAsList("ALLOWED_ORIGINS", "http://localhost:3000"),
		TrustProxy:        getEnvAsBool("TRUST_PROXY", false),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		MaxBodyBytes:      int64(getEnvAsInt("MAX_BODY_BYTES", 1<<20)),

		DisplayCurrency: strings.ToUpper(getEnv("DISPLAY_CURRENCY", "USD")),
	}

	if Cfg.RateLimitRequests <= 0 {
		log.Printf("WARNING: RATE_LIMIT_REQUESTS must be positive, got %d. Using default 100.", Cfg.RateLimitRequests)
		Cfg.RateLimitRequests = 100
	}
	if Cfg.DefaultUserID <= 0 {
		log.Fatalf("FATAL: DEFAULT_USER_ID must be a positive integer, got %d", Cfg.DefaultUserID)
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, Env=%s, AuthEnforced=%t",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.Environment, Cfg.AuthEnforced)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid boolean value for %s ('%s'), using default: %t", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, fallback), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
