package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8000"
	defaultEnvironment = "development"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	return fromEnvironment(), nil
}

// the groq key is read as-is; a missing key surfaces as a 401 from the provider
func fromEnvironment() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = defaultEnvironment
	}

	return &Config{
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqAPIURL:  os.Getenv("GROQ_API_URL"),
		Port:        port,
		Environment: environment,
	}
}
