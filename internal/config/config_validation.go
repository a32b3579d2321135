// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks what the server needs to start.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and positive request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: invalid server url %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAdapterConfigs, u.Scheme)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.App.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidAppConfigs)
	}

	if cfg.Sandbox.RunTimeout < 0 {
		return ErrInvalidSandboxConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *KeygenConfig) validate() error {
	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.Role == "" {
		return fmt.Errorf("%w: key role is required", ErrInvalidAppConfigs)
	}
	return nil
}
