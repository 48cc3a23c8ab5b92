package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FASTRAC_URL", "https://api.fastrac.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3*time.Second, cfg.Checkout.SubmitDelay)
	assert.Equal(t, 30*time.Minute, cfg.Checkout.SessionTTL)
	assert.Equal(t, "https://api.fastrac.example", cfg.Fastrac.BaseURL)
	assert.Empty(t, cfg.Fastrac.AccessKey)
	assert.Empty(t, cfg.Fastrac.SecretKey)
}

func TestLoad_RequiresProviderURL(t *testing.T) {
	t.Setenv("FASTRAC_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FASTRAC_URL")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FASTRAC_URL", "https://api.fastrac.example/ ")
	t.Setenv("FASTRAC_ACCESS_KEY", "ak")
	t.Setenv("FASTRAC_SECRET_KEY", "sk")
	t.Setenv("CHECKOUT_SUBMIT_DELAY", "100ms")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.fastrac.example/", cfg.Fastrac.BaseURL)
	assert.Equal(t, "ak", cfg.Fastrac.AccessKey)
	assert.Equal(t, "sk", cfg.Fastrac.SecretKey)
	assert.Equal(t, 100*time.Millisecond, cfg.Checkout.SubmitDelay)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("FASTRAC_URL", "https://api.fastrac.example")
	t.Setenv("CHECKOUT_SUBMIT_DELAY", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECKOUT_SUBMIT_DELAY")
}
