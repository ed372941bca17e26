package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("NFZ_BASE_URL")
	os.Unsetenv("NFZ_API_VERSION")
	os.Unsetenv("NFZ_HTTP_TIMEOUT")
	os.Unsetenv("GEOLOCATION_PROVIDER")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "https://api.nfz.gov.pl/app-itl-api", cfg.Registry.BaseURL)
	assert.Equal(t, "1.3", cfg.Registry.APIVersion)
	assert.Equal(t, 15*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "none", cfg.Geolocation.Provider)
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("NFZ_BASE_URL", "http://localhost:9090/app-itl-api")
	os.Setenv("NFZ_HTTP_TIMEOUT", "3s")
	os.Setenv("GEOLOCATION_PROVIDER", "static")
	os.Setenv("GEOLOCATION_LATITUDE", "52.2297")
	defer func() {
		os.Unsetenv("NFZ_BASE_URL")
		os.Unsetenv("NFZ_HTTP_TIMEOUT")
		os.Unsetenv("GEOLOCATION_PROVIDER")
		os.Unsetenv("GEOLOCATION_LATITUDE")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://localhost:9090/app-itl-api", cfg.Registry.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "static", cfg.Geolocation.Provider)
	assert.Equal(t, 52.2297, cfg.Geolocation.Latitude)
}
