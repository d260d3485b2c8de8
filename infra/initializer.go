package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads .env when present; a missing file just means the
// process environment is used as-is.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
}
