package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultAddr = ":8080"

// LoadDotenv reads .env files into the environment. Missing files are not
// an error; variables already set win.
func LoadDotenv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return defaultAddr
	}
	return addr
}

// Development is on only when DEVELOPMENT parses as a true boolean.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok || development == "" {
		return false
	}
	on, err := strconv.ParseBool(development)
	return err == nil && on
}
