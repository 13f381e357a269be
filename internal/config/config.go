// internal/config/config.go
//
// Environment-driven settings. main loads `.env` with godotenv first, so
// values may come from either the process environment or that file.
//
// Environment variables:
//   LOG_LEVEL=info               zerolog level
//   WORDS_FILE=/path/words.txt   word list override (embedded default otherwise)
//   HANGMAN_MAX_MISSES=6         wrong guesses allowed per round (0 = unlimited)
//   HANGMAN_DB=./data/hangman.db result history; empty disables it
//   DAILY_SALT=local_dev_salt    HMAC salt for the daily word
//   PORT=5175                    `serve` listen port
//   CLIENT_ORIGIN=http://localhost:5173 CORS origin for `serve`

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds resolved settings.
type Config struct {
	LogLevel     string
	WordsFile    string
	MaxMisses    int
	DBPath       string
	DailySalt    string
	Port         string
	ClientOrigin string
}

// Load reads the environment, applying defaults.
func Load() (Config, error) {
	c := Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		DBPath:       os.Getenv("HANGMAN_DB"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
	n, err := envInt("HANGMAN_MAX_MISSES", 6)
	if err != nil {
		return Config{}, err
	}
	if n < 0 {
		return Config{}, fmt.Errorf("HANGMAN_MAX_MISSES must not be negative, got %d", n)
	}
	c.MaxMisses = n
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
