package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/flashdeck/flashdeck-api/config"
	"github.com/flashdeck/flashdeck-api/handlers"
)

func main() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
	config.Load()

	// Initialize database connection
	if err := config.Connect(); err != nil {
		log.Fatalf("main: %v", err)
	}

	h := handlers.New(config.Database)
	mux := handlers.Router(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("main: listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("main: %v", err)
	}
}
