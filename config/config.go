package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultPageSize int64 = 2

type Config struct {
	MongoURI     string
	MongoDB      string
	Port         string
	JWTSecret    string
	UploadDir    string
	PageSize     int64
	NatsURL      string // empty disables event publishing
	OtelEndpoint string // empty disables tracing
	Env          string // "local" or "prod"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	cfg := Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "feed"),
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		UploadDir:    getEnv("UPLOAD_DIR", "images"),
		PageSize:     getEnvInt("FEED_PAGE_SIZE", DefaultPageSize),
		NatsURL:      getEnv("NATS_URL", ""),
		OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Env:          getEnv("APP_ENV", "local"),
	}
	return cfg
}
