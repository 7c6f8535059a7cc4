package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SessionID   string
	SessionTime string
	LogLevel    string
	Plain       bool
}

// Load reads envFile when it exists, then builds a Config from the
// environment. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	return Config{
		SessionID:   getenv("SESSION_ID", "concert"),
		SessionTime: getenv("SESSION_TIME", "19:00"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Plain:       os.Getenv("NO_COLOR") != "",
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
