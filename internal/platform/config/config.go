package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	HolidayFile       string
	PrenoticeDays     int
	DefaultTotalDays  float64
	AllowedClientIPs  []string
	WebhookURL        string
	SeedAdminEmail    string
	SeedAdminPassword string
	RunMigrations     bool
	RunSeed           bool
	MetricsEnabled    bool
	CORSOrigins       []string
	TokenTTL          time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		Environment:       getEnv("APP_ENV", "development"),
		HolidayFile:       getEnv("HOLIDAY_FILE", "holidays.toml"),
		PrenoticeDays:     getEnvInt("PRENOTICE_DAYS", 3),
		DefaultTotalDays:  getEnvFloat("DEFAULT_TOTAL_DAYS", 15.0),
		AllowedClientIPs:  getEnvList("ALLOWED_CLIENT_IPS", "127.0.0.1,10.,192.168."),
		WebhookURL:        getEnv("NOTIFY_WEBHOOK_URL", ""),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:           getEnvBool("RUN_SEED", true),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		CORSOrigins:       getEnvList("CORS_ORIGINS", "*"),
		TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key, fallback string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.PrenoticeDays < 0 {
		return fmt.Errorf("PRENOTICE_DAYS must not be negative")
	}
	if c.DefaultTotalDays <= 0 {
		return fmt.Errorf("DEFAULT_TOTAL_DAYS must be positive")
	}
	if c.RunSeed && c.Environment == "production" && strings.TrimSpace(c.SeedAdminPassword) == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
	}
	return nil
}
