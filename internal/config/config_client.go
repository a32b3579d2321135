package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	APIKey   string
	HashKey  string
	Version  string
	LogLevel string
}

// ClientAdapter holds how the client reaches the server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientSandbox holds script execution limits.
type ClientSandbox struct {
	RunTimeout time.Duration
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Sandbox ClientSandbox
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIKey:   cfg.App.APIKey,
			HashKey:  cfg.App.HashKey,
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Sandbox: ClientSandbox{RunTimeout: cfg.Sandbox.RunTimeout},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}

// KeygenConfig is what cmd/keygen needs to sign API keys.
type KeygenConfig struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Role          string
}

// GetKeygenConfig loads the merged configuration and returns the validated
// keygen view.
func GetKeygenConfig() (*KeygenConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	keygenCfg := &KeygenConfig{
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
		Role:          cfg.App.KeyRole,
	}
	return keygenCfg, keygenCfg.validate()
}
