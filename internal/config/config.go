package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env in development. Values already present in the
// environment win, matching how the services run in containers.
func Load() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

// MustHave aborts startup when a required variable is missing.
// Failing fast here beats failing on the first request.
func MustHave(keys ...string) {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}
}

// Get returns the value of key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
