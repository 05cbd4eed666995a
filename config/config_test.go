package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.App = &AppConfig{BaseURL: "https://billing.example.com/"}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, "https://billing.example.com", cfg.App.BaseURL)
	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, 10*time.Second, cfg.Stripe.Timeout)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.RateLimit)
	assert.NotNil(t, cfg.Seed)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{BcryptCost: 12, AccessTTL: time.Minute, RefreshTTL: time.Hour},
		Stripe: &StripeConfig{Timeout: 3 * time.Second},
	}

	cfg.applyDefaults()

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, 3*time.Second, cfg.Stripe.Timeout)
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte("stripe:\n  secretKey: from-file\n  timeout: 5s\nsecretKey:\n  access: file-access\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("STRIPE_SECRETKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, "from-env", cfg.Stripe.SecretKey)
	assert.Equal(t, 5*time.Second, cfg.Stripe.Timeout)
	assert.Equal(t, "file-access", cfg.SecretKey.Access)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BILLING_DOTENV_FILE_ONLY=from-file\nBILLING_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("BILLING_DOTENV_SET", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("BILLING_DOTENV_FILE_ONLY") })

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env"), envFile))

	assert.Equal(t, "from-file", os.Getenv("BILLING_DOTENV_FILE_ONLY"))
	assert.Equal(t, "from-process", os.Getenv("BILLING_DOTENV_SET"))
}
