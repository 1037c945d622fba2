// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and a positive token duration are required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
