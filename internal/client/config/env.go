package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv loads dotenv (if it exists) without overriding variables that
// are already set, then overlays cfg from the environment.
func parseEnv(cfg *Config, dotenv string) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			_ = godotenv.Load(dotenv)
		}
	}

	// API_KEY is the name the web build used.
	envString(&cfg.APIKey, "API_KEY")
	envString(&cfg.APIKey, "GEMINI_API_KEY")
	envString(&cfg.BaseURL, "TONEFLOW_BASE_URL")
	envString(&cfg.StoreDriver, "TONEFLOW_STORE")
	envString(&cfg.DatabaseDSN, "TONEFLOW_DSN")
	envString(&cfg.DataDir, "TONEFLOW_DATA_DIR")
	envString(&cfg.LogLevel, "TONEFLOW_LOG_LEVEL")
	envString(&cfg.S3AccessKey, "TONEFLOW_S3_ACCESS_KEY")
	envString(&cfg.S3SecretKey, "TONEFLOW_S3_SECRET_KEY")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
