package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	MongoString      string
	DBName           string
	Location         *time.Location
	CacheTTL         time.Duration
	JobViewColumns   []string
	StudentAPIURL    string
	StudentTimeout   time.Duration
	InvoiceVerifyURL string
	CacheWarmCron    string
	SeedDemo         bool
	LogLevel         string
	AllowedOrigins   []string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one exists.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded, using process environment", "error", err)
	}

	return &AppConfig{
		Port:             getEnv("PORT", "3000"),
		MongoString:      getEnv("MONGOSTRING", ""),
		DBName:           getEnv("DB_NAME", "school-transport-db"),
		Location:         getLocation("APP_TIMEZONE", "Europe/London"),
		CacheTTL:         getDuration("CACHE_TTL", 2*time.Minute),
		JobViewColumns:   splitList(getEnv("JOB_VIEW_COLUMNS", "")),
		StudentAPIURL:    getEnv("STUDENT_API_URL", ""),
		StudentTimeout:   getDuration("STUDENT_API_TIMEOUT", 10*time.Second),
		InvoiceVerifyURL: getEnv("INVOICE_VERIFY_URL", ""),
		CacheWarmCron:    getEnv("CACHE_WARM_CRON", "0 5 * * *"),
		SeedDemo:         getBool("SEED_DEMO", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:   getList("CORS_ORIGINS", defaultOrigins),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return b
}

func getLocation(key, fallback string) *time.Location {
	name := getEnv(key, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown time zone, using UTC", "key", key, "value", name)
		return time.UTC
	}
	return loc
}

func getList(key string, fallback []string) []string {
	if list := splitList(getEnv(key, "")); len(list) > 0 {
		return list
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
