package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPAddr        string
	GeminiAPIKey    string
	AllowedOrigin   string
	GenerateTimeout time.Duration
}

// Load reads configuration from the environment. A missing GEMINI_API_KEY is
// not an error here: the server still starts and every generation attempt
// reports a configuration error instead of calling the provider.
func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		AllowedOrigin:   envOr("ALLOWED_ORIGIN", "http://localhost:5173"),
		GenerateTimeout: 90 * time.Second,
	}

	if v := os.Getenv("GENERATE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GENERATE_TIMEOUT %q: %w", v, err)
		}
		c.GenerateTimeout = d
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
