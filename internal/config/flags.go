package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args with a private flag set so that it can be called
// more than once (tests, several binaries).
//
// Flags:
//
//	-a                server address host:port
//	-grpc-address     gRPC server address host:port
//	-d                database DSN
//	-c, -config       JSON config file path
//	-token-sign-key   API key signing key
//	-token-issuer     API key issuer
//	-token-duration   API key lifetime (e.g. 720h)
//	-request-timeout  server request timeout (e.g. 10s)
//	-hash-key         HMAC body signing key
//	-server-url       server base URL used by the client
//	-client-timeout   client request timeout
//	-api-key          API key sent by the client
//	-role             role of keys issued by keygen
//	-run-timeout      script run timeout
//	-refresh-interval client tree refresh interval (0 disables)
//	-log-level        log level
//	-version          application version
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcAddress NetAddress
		cfg                        StructuredConfig
	)

	fs := flag.NewFlagSet("go-cloud-editor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "API key signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "API key issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "API key lifetime (e.g., 720h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "HMAC body signing key")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&cfg.App.APIKey, "api-key", "", "API key")
	fs.StringVar(&cfg.App.KeyRole, "role", "", "Role of issued API keys")
	fs.DurationVar(&cfg.Sandbox.RunTimeout, "run-timeout", 0, "Script run timeout (e.g., 5s)")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Tree refresh interval, 0 disables")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
