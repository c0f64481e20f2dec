package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/opencrew/taskhub/pkg/jwtx"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	DatabaseFile   string        // Optional: path to SQLite database file (default: ./taskhub.db)
	SessionKeyFile string        // Optional: path to Ed25519 session signing key (default: ./session.key)
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL     time.Duration // Optional: lifetime of session cookies (default: 1h)
	SecureCookies  bool          // Optional: mark session cookies Secure (default: true, disable for local dev)
	AllowedOrigins []string      // Optional: CORS origins allowed to call the API (default: none)

	SMTPAddr    string // Optional: SMTP relay host:port; when empty, mail goes to the log
	SMTPFrom    string // Optional: From address for outbound mail
	FrontendURL string // Optional: public frontend URL used to build invitation links

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("TASKHUB_ISSUER", "taskhub"),
		DatabaseFile:         getEnvOrDefault("TASKHUB_DATABASE_FILE", "taskhub.db"),
		SessionKeyFile:       getEnvOrDefault("TASKHUB_SESSION_KEY_FILE", "session.key"),
		PepperFile:           getEnvOrDefault("TASKHUB_PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("TASKHUB_SESSION_TTL", jwtx.DefaultSessionTTL),
		SecureCookies:        getEnvBoolOrDefault("TASKHUB_SECURE_COOKIES", true),
		SMTPAddr:             os.Getenv("TASKHUB_SMTP_ADDR"),
		SMTPFrom:             getEnvOrDefault("TASKHUB_SMTP_FROM", "no-reply@taskhub.local"),
		FrontendURL:          getEnvOrDefault("TASKHUB_FRONTEND_URL", "http://localhost:3000"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// Comma-separated list, e.g. "https://app.example.com,https://staging.example.com"
	if origins := os.Getenv("TASKHUB_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
