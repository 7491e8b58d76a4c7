package config

import (
	"os"

	"github.com/joho/godotenv"
)

// placeholderAPIKey is the sentinel shipped in example env files; treated the
// same as an unset key.
const placeholderAPIKey = "ABCdef123123"

type Config struct {
	Port          string
	YouTubeAPIKey string
	MongoURL      string
	DBName        string
	CORSOrigins   string
	LogLevel      string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing keys fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", placeholderAPIKey),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "tuberev"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// APIKeyConfigured reports whether a real YouTube credential is present.
func (c *Config) APIKeyConfigured() bool {
	return c.YouTubeAPIKey != "" && c.YouTubeAPIKey != placeholderAPIKey
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
