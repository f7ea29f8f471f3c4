package app

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for session tokens (default: platescan)
	SessionSecret string        // Optional: HMAC secret for session tokens (default: random per process)
	SessionTTL    time.Duration // Optional: session token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./platescan.db)

	GeminiAPIKey  string        // Required: API key for the vision model
	GeminiModel   string        // Optional: vision model name (default: gemini-1.5-flash)
	GeminiBaseURL string        // Optional: vision API base URL override, used in tests
	VisionTimeout time.Duration // Optional: per-request vision call timeout (default: 60s)

	CloudinaryCloudName string // Optional: when set, profile pictures upload to Cloudinary
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string // Optional: Cloudinary folder (default: platescan)
	MediaDir            string // Optional: local picture directory when Cloudinary is unset (default: ./media)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Local development reads a .env file; missing files are fine.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:        getEnvOrDefault("SCAN_ISSUER", "platescan"),
		SessionSecret: os.Getenv("SCAN_SESSION_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("SCAN_SESSION_TTL", 24*time.Hour),

		DatabaseFile: getEnvOrDefault("SCAN_DATABASE_FILE", "platescan.db"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		VisionTimeout: getEnvDurationOrDefault("VISION_TIMEOUT", 60*time.Second),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnvOrDefault("CLOUDINARY_FOLDER", "platescan"),
		MediaDir:            getEnvOrDefault("SCAN_MEDIA_DIR", "media"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Without a configured secret every restart invalidates all sessions,
	// which is acceptable for development.
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
	}

	return cfg
}

func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
