package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_AuthConfig(t *testing.T) {
	os.Setenv("AUTH_BASE_URL", "http://test-auth:9999")
	os.Setenv("AUTH_API_KEY", "anon-key")
	os.Setenv("AUTH_FLOW", "pkce")
	os.Setenv("AUTH_RESOLVE_TIMEOUT", "5s")
	defer func() {
		os.Unsetenv("AUTH_BASE_URL")
		os.Unsetenv("AUTH_API_KEY")
		os.Unsetenv("AUTH_FLOW")
		os.Unsetenv("AUTH_RESOLVE_TIMEOUT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://test-auth:9999", cfg.Auth.BaseURL)
	assert.Equal(t, "anon-key", cfg.Auth.APIKey)
	assert.Equal(t, "pkce", cfg.Auth.Flow)
	assert.Equal(t, 5*time.Second, cfg.Auth.ResolveTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("AUTH_BASE_URL")
	os.Unsetenv("AUTH_FLOW")
	os.Unsetenv("AUTH_RESOLVE_TIMEOUT")
	os.Unsetenv("APP_ENV")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "implicit", cfg.Auth.Flow)
	assert.Equal(t, 8*time.Second, cfg.Auth.ResolveTimeout)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "flyfishing", cfg.Database.Database)
}

func TestAppConfig_IsDevelopment(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	defer os.Unsetenv("APP_ENV")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.False(t, cfg.App.IsDevelopment())
}
