package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/swblog/starwars-api/internal/logging"
)

type Config struct {
	Port            string
	DatabaseURL     string
	DBDriver        string
	AutoMigrate     bool
	AllowOrigins    []string
	EnableAdmin     bool
	EnableSwagger   bool
	LogLevel        string
	LogFormat       string
	LogstashTCPAddr string
	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOUseSSL     bool
	MinIOBucketSeed string
	ShutdownTimeout time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Err(err).Msg(".env file not loaded")
	}

	shutdown := 10 * time.Second
	if v, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "10s")); err == nil && v > 0 {
		shutdown = v
	}

	return Config{
		Port:            getenv("PORT", "3000"),
		DatabaseURL:     getenv("DATABASE_URL", "sqlite:///tmp/test.db"),
		DBDriver:        getenv("DB_DRIVER", ""),
		AutoMigrate:     getbool("AUTO_MIGRATE", true),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		EnableAdmin:     getbool("ENABLE_ADMIN", true),
		EnableSwagger:   getbool("ENABLE_SWAGGER", true),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:   getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:  getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:  getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:     getbool("MINIO_USE_SSL", false),
		MinIOBucketSeed: getenv("MINIO_BUCKET_SEED", ""),
		ShutdownTimeout: shutdown,
	}
}

// MinIOConfigured reports whether enough settings exist to reach object storage.
func (c Config) MinIOConfigured() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getbool(k string, d bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return d
	}
	return v
}
