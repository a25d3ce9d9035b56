// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the hub
// channel client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds hub identity and the local user's credentials and profile.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistent store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the hub server addresses and transport timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs (token refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds settings identifying the hub and the local user.
type App struct {
	// HubID is the identifier of the hub to join.
	// Env: APP_HUB_ID
	HubID string `env:"HUB_ID"`

	// CredentialsToken is the account credential exchanged for a permission
	// token on sign-in. Empty means anonymous.
	// Env: APP_CREDENTIALS_TOKEN
	CredentialsToken string `env:"CREDENTIALS_TOKEN"`

	// UserAgent is reported to the hub in the entered event.
	// Env: APP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// DisplayName is the profile display name broadcast on profile updates.
	// Env: APP_DISPLAY_NAME
	DisplayName string `env:"DISPLAY_NAME"`

	// VRDisplay names the presenting VR display, if any.
	// Env: APP_VR_DISPLAY
	VRDisplay string `env:"VR_DISPLAY"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds hub server addresses and transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the hub server HTTP API, used to
	// discover the socket host (e.g. "https://hubs.example.com").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// SocketAddress is the websocket endpoint. When empty it is derived from
	// the server metadata.
	// Env: ADAPTER_SOCKET_ADDRESS
	SocketAddress string `env:"SOCKET_ADDRESS"`

	// RequestTimeout bounds HTTP requests and channel acknowledgments.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HeartbeatInterval is the socket heartbeat period.
	// Env: ADAPTER_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshLeeway is how long before token expiry the permission token is
	// refreshed.
	// Env: WORKERS_REFRESH_LEEWAY
	RefreshLeeway time.Duration `env:"REFRESH_LEEWAY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Merging keeps the first non-zero value, so sources take
// priority in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
