package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	JWTSecret    string
	SeedPassword string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "Asia/Kolkata"),
		DBPath:       get("DB_PATH", "pmu.db"),
		JWTSecret:    get("JWT_SECRET", "dev-only-secret"),
		SeedPassword: get("SEED_PASSWORD", "changeme"),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s", cfg.Port, cfg.Timezone, cfg.DBPath)
	return cfg
}
