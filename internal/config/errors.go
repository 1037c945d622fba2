package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
