package config

import (
	"fmt"
	"os"
	"strconv"
)

type LogFile struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// NewLogFile returns nil when LOG_FILE is not set.
func NewLogFile() (*LogFile, error) {
	path, ok := os.LookupEnv("LOG_FILE")
	if !ok || path == "" {
		return nil, nil
	}

	maxSize, err := lookupInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	return &LogFile{
		Path:       path,
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}
