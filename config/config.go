package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	PublicBaseURL string

	MongoURI  string
	RedisAddr string

	JWTSecret []byte

	OpenAIKey      string
	PlacesKey      string
	OpenWeatherKey string

	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string

	// Timeout applied to every outbound API call.
	ExternalTimeout time.Duration
}

// Load reads the environment into a Config. Required variables that are
// missing fail startup rather than surfacing later as broken routes.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", ":8080"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),

		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		PlacesKey:      os.Getenv("GOOGLE_PLACES_API_KEY"),
		OpenWeatherKey: os.Getenv("OPENWEATHER_API_KEY"),

		SMTPHost:       getenv("SMTP_SERVER", "smtp.gmail.com"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	cfg.JWTSecret = []byte(secret)

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	port, err := strconv.Atoi(getenv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	secs, err := strconv.Atoi(getenv("EXTERNAL_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXTERNAL_TIMEOUT_SECONDS: %w", err)
	}
	cfg.ExternalTimeout = time.Duration(secs) * time.Second

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
