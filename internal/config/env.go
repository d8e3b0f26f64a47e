package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// envPrefix is prepended to every variable, e.g. SENTINEL_PORT.
const envPrefix = "SENTINEL"

// Config contains all configuration parameters for the application.
// It is loaded once at startup and passed to the components that need it.
// Note: the password is never part of Config - use PromptForPassword.
type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	DatabasePath string        `envconfig:"DATABASE_PATH" default:"sentinel.db"`
	SolanaRPCURL string        `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	HeliusAPIKey string        `envconfig:"HELIUS_API_KEY"`
	RPCTimeout   time.Duration `envconfig:"RPC_TIMEOUT" default:"15s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// PublicConfig is the part of Config that may be shown to API clients.
type PublicConfig struct {
	Port         string `json:"port"`
	DatabasePath string `json:"databasePath"`
	SolanaRPCURL string `json:"solanaRpcUrl"`
	HeliusAPIKey bool   `json:"heliusApiKeySet"`
	RPCTimeout   string `json:"rpcTimeout"`
	LogLevel     string `json:"logLevel"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database path must not be empty")
	}
	if _, err := url.ParseRequestURI(c.SolanaRPCURL); err != nil {
		return fmt.Errorf("invalid Solana RPC URL: %w", err)
	}
	if c.RPCTimeout <= 0 {
		return errors.New("RPC timeout must be positive")
	}
	return nil
}

// RPCEndpoint returns the RPC URL, with the Helius API key attached when set.
func (c *Config) RPCEndpoint() string {
	if c.HeliusAPIKey == "" {
		return c.SolanaRPCURL
	}
	u, err := url.Parse(c.SolanaRPCURL)
	if err != nil {
		return c.SolanaRPCURL
	}
	q := u.Query()
	q.Set("api-key", c.HeliusAPIKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// Public returns the configuration without secrets.
func (c *Config) Public() PublicConfig {
	return PublicConfig{
		Port:         c.Port,
		DatabasePath: c.DatabasePath,
		SolanaRPCURL: c.SolanaRPCURL,
		HeliusAPIKey: c.HeliusAPIKey != "",
		RPCTimeout:   c.RPCTimeout.String(),
		LogLevel:     c.LogLevel,
	}
}

// PromptForPassword prompts the user for the master password in the terminal.
// The password is read without echoing (hidden input).
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}
