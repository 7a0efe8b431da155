// Package config provides neogov command configuration read from YAML.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "neogov.config"

// DefaultTimeout is used for RPC dial and requests if not configured.
const DefaultTimeout = 15 * time.Second

// Contracts holds addresses of the deployed contracts. Both Neo addresses and
// little-endian hex script hashes are accepted.
type Contracts struct {
	RoleManager string `yaml:"rolemanager"`
	VotingPower string `yaml:"votingpower"`
	Governance  string `yaml:"governance"`
}

type Config struct {
	RPCEndpoint string        `yaml:"rpc"`
	Timeout     time.Duration `yaml:"timeout"`
	Contracts   Contracts     `yaml:"contracts"`
}

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

// Load reads configuration from the given YAML file. Empty path results in
// default configuration.
func Load(configFile string) (*Config, error) {
	cfg := &Config{
		Timeout: DefaultTimeout,
	}

	if configFile == "" {
		return cfg, nil
	}

	buf, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}

	return cfg, nil
}
