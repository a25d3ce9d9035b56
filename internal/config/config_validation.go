// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Source-independent checks
// live in [ClientConfig.validate]; here only values that no source could
// legitimately produce are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.HeartbeatInterval < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.HubID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" && cfg.Adapter.SocketAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.HeartbeatInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshLeeway < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
