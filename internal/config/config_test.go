package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, "sandbox", cfg.BrainTree.Environment)
}

func TestParse_Prefixes(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("BRAINTREE_MERCHANT_ID", "merchant-1")
	t.Setenv("PAYMENT_CURRENCY", "eur")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "secret", cfg.Auth.SecretKey)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "merchant-1", cfg.BrainTree.MerchantID)
	assert.Equal(t, "eur", cfg.Payment.Currency)
}

func TestParse_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	cfg := &Config{}
	assert.Error(t, env.Parse(cfg))
}
