package config

import "errors"

var (
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidSandboxConfigs = errors.New("invalid sandbox configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
