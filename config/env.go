package config

import "os"

// GetEnv reads an environment variable, returning "" when unset.
// Values come from the process environment or the .env file loaded at startup.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault reads an environment variable with a fallback value.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
