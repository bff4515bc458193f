// Standalone seeding entrypoint: ensures the 3 predefined survey questions
// exist. The server also seeds at bootstrap; this script is for provisioning
// a database ahead of the first deploy.
//
// Usage: go run ./scripts
package main

import (
	"log"

	"leadership-survey-backend/internal/config"
	"leadership-survey-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	if err := database.SeedDefaultQuestions(db); err != nil {
		log.Fatal("Failed to seed survey questions: ", err)
	}

	log.Println("Seed completed")
}
