package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is everything the process reads from the environment.
type Settings struct {
	Port        string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration
	CryptoKey string

	GeminiAPIKey   string
	GeminiModel    string
	InsightTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	ReminderSchedule string

	AllowedOrigins     []string
	RateLimitPerMinute int

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() Settings {
	return Settings{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),
		CryptoKey: os.Getenv("CRYPTO_KEY"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		InsightTimeout: getDuration("INSIGHT_TIMEOUT", 20*time.Second),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getenv("SMTP_FROM", "Mente Viva <no-reply@mente-viva.com>"),

		ReminderSchedule: getenv("REMINDER_SCHEDULE", "@every 1m"),

		AllowedOrigins:     getList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 30),

		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 7),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
