package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/akshitb/jotter/storage"
)

type Config struct {
	StorePath string
}

// Load reads configuration from a .env file (if present) and the
// environment. JOTTER_PATH overrides where the note slot lives.
func Load() (Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("JOTTER_PATH")
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	return Config{StorePath: path}, nil
}
