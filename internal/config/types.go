package config

type Config struct {
	GroqAPIKey  string
	GroqAPIURL  string // empty means the provider default
	Port        string
	Environment string
}

// reports whether the server runs with production logging and gin release mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
