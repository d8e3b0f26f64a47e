package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sentinel.db", cfg.DatabasePath)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.SolanaRPCURL)
	assert.Equal(t, 15*time.Second, cfg.RPCTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, cfg.SolanaRPCURL, cfg.RPCEndpoint())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SENTINEL_PORT", "9090")
	t.Setenv("SENTINEL_DATABASE_PATH", "/tmp/w.db")
	t.Setenv("SENTINEL_SOLANA_RPC_URL", "https://mainnet.helius-rpc.com/")
	t.Setenv("SENTINEL_HELIUS_API_KEY", "k3y")
	t.Setenv("SENTINEL_RPC_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/w.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RPCTimeout)
	assert.Equal(t, "https://mainnet.helius-rpc.com/?api-key=k3y", cfg.RPCEndpoint())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("rpc url", func(t *testing.T) {
		t.Setenv("SENTINEL_SOLANA_RPC_URL", "not a url")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("timeout", func(t *testing.T) {
		t.Setenv("SENTINEL_RPC_TIMEOUT", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("timeout type", func(t *testing.T) {
		t.Setenv("SENTINEL_RPC_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestPublicHidesSecrets(t *testing.T) {
	cfg := &Config{SolanaRPCURL: "https://x", HeliusAPIKey: "secret", RPCTimeout: time.Second}

	pub := cfg.Public()
	assert.True(t, pub.HeliusAPIKey)
	assert.NotContains(t, pub.SolanaRPCURL, "secret")
}
