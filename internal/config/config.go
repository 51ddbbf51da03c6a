package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config collects everything the demo reads from its environment.
type Config struct {
	// DataFile is the JSON file backing the default KV store.
	DataFile string
	// DatabaseURL switches persistence to postgres when set.
	DatabaseURL string
	// KafkaBrokers enables the transfer-completed publisher when set.
	KafkaBrokers []string
	// ExportDir receives exported CSV documents.
	ExportDir string
	// LogLevel is a zap level name.
	LogLevel string
}

// Load reads .env when present, then the process environment. A
// missing .env is fine; missing keys fall back to local-file defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DataFile:    envOr("BANKDEMO_DATA_FILE", "bankdemo.json"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ExportDir:   envOr("BANKDEMO_EXPORT_DIR", "."),
		LogLevel:    envOr("BANKDEMO_LOG_LEVEL", "info"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
