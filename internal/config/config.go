package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	TokenTTL  time.Duration

	// PartUpsertOnStock preserves the legacy behavior of creating a part
	// document when a stock update targets an unknown identifier.
	PartUpsertOnStock bool

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads .env (if present) and the process environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	return Config{
		Port:              getenv("PORT", "8080"),
		MongoURI:          getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getenv("DB_NAME", "bikeverse"),
		JWTSecret:         getenv("JWT_SECRET", ""),
		TokenTTL:          getduration("TOKEN_TTL", 24*time.Hour),
		PartUpsertOnStock: getbool("PART_UPSERT_ON_STOCK", false),
		MinioEndpoint:     getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:    getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:    getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:       getenv("MINIO_BUCKET", "part-images"),
		MinioUseSSL:       getbool("MINIO_USE_SSL", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
