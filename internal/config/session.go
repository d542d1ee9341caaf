package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultSessionTTL  = 24 * time.Hour
	developmentSecret  = "development-secret"
	minimumSecretBytes = 16
)

type Session struct {
	Secret []byte
	TTL    time.Duration
}

func loadSecret() (string, error) {
	secret, ok := os.LookupEnv("SESSION_SECRET")
	if ok {
		return secret, nil
	}

	secretFile, ok := os.LookupEnv("SESSION_SECRET_FILE")
	if !ok {
		if Development() {
			return developmentSecret, nil
		}
		return "", fmt.Errorf("no SESSION_SECRET or SESSION_SECRET_FILE env variable set")
	}

	data, err := os.ReadFile(secretFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from secret file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func NewSession() (*Session, error) {
	secret, err := loadSecret()
	if err != nil {
		return nil, err
	}
	if len(secret) < minimumSecretBytes {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minimumSecretBytes)
	}

	ttl := defaultSessionTTL
	if ttlStr, ok := os.LookupEnv("SESSION_TTL"); ok {
		ttl, err = time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SESSION_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be positive")
		}
	}

	return &Session{Secret: []byte(secret), TTL: ttl}, nil
}
