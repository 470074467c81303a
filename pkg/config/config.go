// Package config loads and validates the middleware configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	XRPL       XRPLConfig       `mapstructure:"xrpl"`
	Wallets    WalletsConfig    `mapstructure:"wallets"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Shutdown   ShutdownConfig   `mapstructure:"shutdown"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// XRPLConfig contains XRP Ledger client settings.
type XRPLConfig struct {
	// WebsocketURL is the node the ledger client connects to,
	// e.g. wss://s.devnet.rippletest.net:51233.
	WebsocketURL string `mapstructure:"websocket_url"`

	// Network is a human-readable network label used in logs and
	// responses (devnet, testnet, mainnet).
	Network string `mapstructure:"network"`

	// SubmitTimeout bounds a single autofill/sign/submit round trip.
	SubmitTimeout time.Duration `mapstructure:"submit_timeout"`

	// FaucetFunding enables topping up vault accounts from the network
	// faucet at startup. Test networks only.
	FaucetFunding bool `mapstructure:"faucet_funding"`
}

// WalletsConfig lists the demo accounts held by the vault.
type WalletsConfig struct {
	// Seeds are family seeds of the accounts the middleware signs for.
	Seeds []string `mapstructure:"seeds"`
}

// MonitoringConfig contains metrics settings.
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ShutdownConfig contains graceful shutdown settings.
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// XRPL defaults
	v.SetDefault("xrpl.websocket_url", "wss://s.devnet.rippletest.net:51233")
	v.SetDefault("xrpl.network", "devnet")
	v.SetDefault("xrpl.submit_timeout", "30s")
	v.SetDefault("xrpl.faucet_funding", false)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	// Shutdown defaults
	v.SetDefault("shutdown.timeout", "30s")
}

func validate(config *Config) error {
	if config.XRPL.WebsocketURL == "" {
		return fmt.Errorf("xrpl.websocket_url is required")
	}
	if len(config.Wallets.Seeds) == 0 {
		return fmt.Errorf("wallets.seeds must list at least one account seed")
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", config.Server.Port)
	}
	return nil
}
