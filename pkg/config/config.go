package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Service     ServiceConfig
	Registry    RegistryConfig
	Geolocation GeolocationConfig
}

// ServiceConfig holds service-level configuration
type ServiceConfig struct {
	Name string
	Env  string
}

// RegistryConfig holds the NFZ registry endpoint configuration
type RegistryConfig struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
}

// GeolocationConfig holds origin-provider configuration
type GeolocationConfig struct {
	Provider  string
	Latitude  float64
	Longitude float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "terminarz"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Registry: RegistryConfig{
			BaseURL:    getEnv("NFZ_BASE_URL", "https://api.nfz.gov.pl/app-itl-api"),
			APIVersion: getEnv("NFZ_API_VERSION", "1.3"),
			Timeout:    getEnvAsDuration("NFZ_HTTP_TIMEOUT", 15*time.Second),
		},
		Geolocation: GeolocationConfig{
			Provider:  getEnv("GEOLOCATION_PROVIDER", "none"),
			Latitude:  getEnvAsFloat("GEOLOCATION_LATITUDE", 0),
			Longitude: getEnvAsFloat("GEOLOCATION_LONGITUDE", 0),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
