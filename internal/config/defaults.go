package config

import "time"

// Built-in defaults, applied last.
const (
	DefaultDSN               = "hub-client.db"
	DefaultUserAgent         = "go-hub-channel"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultHeartbeatInterval = 30 * time.Second
	DefaultRefreshLeeway     = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			UserAgent: DefaultUserAgent,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			RequestTimeout:    DefaultRequestTimeout,
			HeartbeatInterval: DefaultHeartbeatInterval,
		},
		Workers: Workers{
			RefreshLeeway: DefaultRefreshLeeway,
		},
	}
}
