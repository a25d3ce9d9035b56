package config

import (
	"fmt"
	"time"
)

// ClientApp holds hub identity and user settings.
type ClientApp struct {
	HubID            string
	CredentialsToken string
	UserAgent        string
	DisplayName      string
	VRDisplay        string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the hub server HTTP API base URL.
	HTTPAddress string
	// SocketAddress is the websocket endpoint, possibly empty.
	SocketAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// HeartbeatInterval is the socket heartbeat period.
	HeartbeatInterval time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshLeeway defines how long before expiry the permission token is
	// refreshed.
	RefreshLeeway time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HubID:            cfg.App.HubID,
			CredentialsToken: cfg.App.CredentialsToken,
			UserAgent:        cfg.App.UserAgent,
			DisplayName:      cfg.App.DisplayName,
			VRDisplay:        cfg.App.VRDisplay,
		},
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			SocketAddress:     cfg.Adapter.SocketAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			HeartbeatInterval: cfg.Adapter.HeartbeatInterval,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshLeeway: cfg.Workers.RefreshLeeway},
	}
}
