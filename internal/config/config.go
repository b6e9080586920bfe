package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DataFile    string
	CORSOrigins string
	LogDir      string
	// Collaborator configuration
	AnthropicAPIKey string
	Model           string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DataFile:    getEnv("DATA_FILE", "data/projects.json"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		LogDir:      getEnv("LOG_DIR", ""),
		// Collaborator configuration
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		Model:           getEnv("MODEL", "claude-3-5-sonnet-20241022"),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
