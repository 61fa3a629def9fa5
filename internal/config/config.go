package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string

	GeminiAPIKey string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GoogleCredentialsFile string
	GoogleSheetID         string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl, exists := os.LookupEnv("DB_URL")
	if !exists || dbUrl == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	return &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: dbUrl,

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),

		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_NUMBER", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		GoogleSheetID:         getEnv("GOOGLE_SHEET_ID", ""),
	}, nil
}

// TwilioConfigured reports whether real WhatsApp delivery is possible.
// When false the delivery service simulates sends instead.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

func (c *Config) SheetsConfigured() bool {
	return c.GoogleCredentialsFile != "" && c.GoogleSheetID != ""
}

func (c *Config) RedisConfigured() bool {
	return c.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
