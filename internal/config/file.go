package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of a JSON or YAML config file.
type FileConfig struct {
	App struct {
		HubID            string `json:"hub_id" yaml:"hub_id"`
		CredentialsToken string `json:"credentials_token" yaml:"credentials_token"`
		UserAgent        string `json:"user_agent" yaml:"user_agent"`
		DisplayName      string `json:"display_name" yaml:"display_name"`
		VRDisplay        string `json:"vr_display" yaml:"vr_display"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Adapter struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		SocketAddress     string   `json:"socket_address" yaml:"socket_address"`
		RequestTimeout    Duration `json:"request_timeout" yaml:"request_timeout"`
		HeartbeatInterval Duration `json:"heartbeat_interval" yaml:"heartbeat_interval"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		RefreshLeeway Duration `json:"refresh_leeway" yaml:"refresh_leeway"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file, choosing the decoder by extension:
// .yaml/.yml use YAML, .json (or no extension) use JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.structured(), nil
}

func (f FileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HubID:            f.App.HubID,
			CredentialsToken: f.App.CredentialsToken,
			UserAgent:        f.App.UserAgent,
			DisplayName:      f.App.DisplayName,
			VRDisplay:        f.App.VRDisplay,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:       f.Adapter.HTTPAddress,
			SocketAddress:     f.Adapter.SocketAddress,
			RequestTimeout:    time.Duration(f.Adapter.RequestTimeout),
			HeartbeatInterval: time.Duration(f.Adapter.HeartbeatInterval),
		},
		Workers: Workers{
			RefreshLeeway: time.Duration(f.Workers.RefreshLeeway),
		},
	}
}

// Duration is a wrapper around time.Duration that unmarshals from strings like
// "1h", "30s" (JSON and YAML) or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := value.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
