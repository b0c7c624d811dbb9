package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the backend.
//
// All values come from the environment; a .env file in the working
// directory is loaded first if it exists so that local development does
// not need exported variables.
//
// APP_PASSWORD, SPLIT_RULES_FILE, CORS_ALLOW_ORIGINS and ENABLE_PPROF
// are read by the router, which owns the state they configure.
type Config struct {
	Port   string // Port the HTTP server listens on
	DBPath string // Path to the SQLite database file, unused when DB_HOST is set
	APIURL string // Base URL the backend is reachable under
}

// ErrAPIURLNotSet is returned when the API_URL environment variable is missing.
var ErrAPIURLNotSet = errors.New("the API_URL environment variable must be set")

// Load reads the configuration from the environment.
func Load() (Config, error) {
	// A missing .env file is not an error, the environment can be set
	// by other means
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	config := Config{
		Port:   os.Getenv("PORT"),
		DBPath: os.Getenv("SQLITE_DB_PATH"),
		APIURL: os.Getenv("API_URL"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	if config.DBPath == "" {
		config.DBPath = "data/hauskasse.db"
	}

	if config.APIURL == "" {
		return Config{}, ErrAPIURLNotSet
	}

	return config, nil
}
