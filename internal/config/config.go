package config

import (
	"log"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ no .env file found — falling back to system environment variables")
	} else {
		log.Println("✅ .env loaded")
	}
}
