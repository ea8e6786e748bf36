package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogFile     string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. DATABASE_URL has no default: the service refuses to
// start without a storage backend to point at.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DatabaseURL: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s LOG_FILE=%s", cfg.Port, cfg.LogFile)
	return cfg, nil
}
