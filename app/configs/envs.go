package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	APIBaseURL string
	DataDir    string
	Currency   string
	LogLevel   string
	APP_ENV    string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		APIBaseURL: os.Getenv("API_BASE_URL"),
		DataDir:    os.Getenv("DATA_DIR"),
		Currency:   os.Getenv("CURRENCY_SYMBOL"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		APP_ENV:    os.Getenv("APP_ENV"),
	}

	if env.APIBaseURL == "" {
		env.APIBaseURL = "http://localhost:3030/v1"
	}
	if env.DataDir == "" {
		env.DataDir = ".storefront"
	}
	if env.Currency == "" {
		env.Currency = "$"
	}

	return env
}
