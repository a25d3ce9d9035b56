package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"
)

// ServerURL holds an absolute server URL given on the command line.
// It implements the flag.Value interface.
type ServerURL struct {
	URL *url.URL
}

// ParseFlags parses configuration flags from the process arguments.
//
// Flags:
//
//	-hub hub id to join
//	-token credentials token
//	-a hub server HTTP base URL
//	-socket websocket endpoint URL
//	-d local database DSN
//	-c/-config JSON or YAML config file path
//	-user-agent user agent reported on entry
//	-name profile display name
//	-vr-display presenting VR display name
//	-request-timeout request timeout (e.g., "10s")
//	-heartbeat socket heartbeat interval (e.g., "30s")
//	-refresh-leeway permission token refresh leeway (e.g., "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("hub-client", flag.ContinueOnError)

	var httpAddress, socketAddress ServerURL
	var hubID, credentialsToken string
	var databaseDSN string
	var configPath string
	var userAgent, displayName, vrDisplay string
	var requestTimeout, heartbeatInterval, refreshLeeway time.Duration

	fs.StringVar(&hubID, "hub", "", "Hub id")
	fs.StringVar(&credentialsToken, "token", "", "Credentials token")
	fs.Var(&httpAddress, "a", "Hub server HTTP base URL")
	fs.Var(&socketAddress, "socket", "Websocket endpoint URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&userAgent, "user-agent", "", "User agent reported on entry")
	fs.StringVar(&displayName, "name", "", "Profile display name")
	fs.StringVar(&vrDisplay, "vr-display", "", "Presenting VR display name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&heartbeatInterval, "heartbeat", 0, "Socket heartbeat interval (e.g., 30s)")
	fs.DurationVar(&refreshLeeway, "refresh-leeway", 0, "Permission token refresh leeway (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HubID:            hubID,
			CredentialsToken: credentialsToken,
			UserAgent:        userAgent,
			DisplayName:      displayName,
			VRDisplay:        vrDisplay,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:       httpAddress.String(),
			SocketAddress:     socketAddress.String(),
			RequestTimeout:    requestTimeout,
			HeartbeatInterval: heartbeatInterval,
		},
		Workers: Workers{
			RefreshLeeway: refreshLeeway,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns the URL, or "" when unset.
func (u *ServerURL) String() string {
	if u == nil || u.URL == nil {
		return ""
	}
	return u.URL.String()
}

// Set parses an absolute URL with a scheme and host.
func (u *ServerURL) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("need an absolute URL in a form `scheme://host[:port]`")
	}

	u.URL = parsed
	return nil
}
