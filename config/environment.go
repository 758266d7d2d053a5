package config

import "os"

type Environment struct {
	Port         string
	DatabaseURL  string
	IsProduction bool
}

var Env Environment

// Load snapshots the process environment. Call once at startup, after any
// .env file has been loaded.
func Load() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	Env = Environment{
		Port:         port,
		DatabaseURL:  os.Getenv("DB_URL"),
		IsProduction: os.Getenv("APP_ENV") == "production",
	}
}
