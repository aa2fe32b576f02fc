package config

import "os"

// Config carries the process-level settings. Values come from the
// environment (a local .env is loaded by main before this runs).
type Config struct {
	Addr             string
	FirestoreProject string
	CredentialsFile  string
	LogLevel         string
}

func Load() Config {
	return Config{
		Addr:             getenv("POS_ADDR", ":8080"),
		FirestoreProject: os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
