package config

import "time"

const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultGRPCAddress     = "localhost:9090"
	DefaultServerURL       = "http://localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRunTimeout      = 5 * time.Second
	DefaultTokenIssuer     = "go-cloud-editor"
	DefaultTokenDuration   = 365 * 24 * time.Hour
	DefaultKeyRole         = "anon"
	DefaultVersion         = "dev"
	DefaultLogLevel        = "debug"
	DefaultRefreshInterval = time.Duration(0)
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       DefaultVersion,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			KeyRole:       DefaultKeyRole,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sandbox: Sandbox{RunTimeout: DefaultRunTimeout},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}
