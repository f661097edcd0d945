// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey     = "BIRDEYE_API_KEY"
	EnvPrivateKey = "SOLANA_PRIVATE_KEY"
	EnvListAPIURL = "BIRDEYE_BASE_URL"
	EnvSwapAPIURL = "JUPITER_BASE_URL"
	EnvRPCURL     = "SOLANA_RPC_URL"
	EnvDataDir    = "DATA_DIR"
)

// Config holds process parameters. Secrets are opaque strings validated at
// the point of use.
type Config struct {
	APIKey     string // token index API key
	PrivateKey string // base58 signing key for the swap flow
	ListAPIURL string // optional token index base URL override
	SwapAPIURL string // optional swap API base URL override
	RPCURL     string // optional chain RPC endpoint override
	DataDir    string // directory for the persisted tables
}

// Load reads configuration from a .env file (when present) and the process
// environment. Missing secrets are not an error here; commands that need
// them call the Require helpers.
func Load() *Config {
	// Absent .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:     os.Getenv(EnvAPIKey),
		PrivateKey: os.Getenv(EnvPrivateKey),
		ListAPIURL: os.Getenv(EnvListAPIURL),
		SwapAPIURL: os.Getenv(EnvSwapAPIURL),
		RPCURL:     os.Getenv(EnvRPCURL),
		DataDir:    os.Getenv(EnvDataDir),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return cfg
}

// RequireAPIKey errors unless the index API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s is not set", EnvAPIKey)
	}
	return nil
}

// RequirePrivateKey errors unless the signing key is configured.
func (c *Config) RequirePrivateKey() error {
	if c.PrivateKey == "" {
		return fmt.Errorf("%s is not set", EnvPrivateKey)
	}
	return nil
}
