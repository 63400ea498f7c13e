package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	Env           string
	PostgresUrl   string
	SessionSecret string
	IndexCacheTTL time.Duration
	PageSize      int

	// Media storage: "disk" or "minio".
	MediaDriver    string
	MediaDir       string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		PostgresUrl:    getEnv("POSTGRES_CONN_STR", ""),
		SessionSecret:  getEnv("SESSION_SECRET", "supersecretsessionkey"),
		IndexCacheTTL:  time.Duration(getEnvInt("INDEX_CACHE_TTL_SECONDS", 20)) * time.Second,
		PageSize:       getEnvInt("PAGE_SIZE", 10),
		MediaDriver:    getEnv("MEDIA_DRIVER", "disk"),
		MediaDir:       getEnv("MEDIA_DIR", "./media"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "scribe-media"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
