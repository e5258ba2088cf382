package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	AppEnv    string
	DataDir   string
	RedisURL  string
	JWTSecret string

	// Session lifetime in seconds. Matches the browser-session cookie.
	SessionTTL int

	// Optional overrides for the notification channel credentials stored in
	// the site settings document.
	TelegramBotToken string
	TelegramChatID   string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		SessionTTL:       getEnvAsInt("SESSION_TTL", 8*3600),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
