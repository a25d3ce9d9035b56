package adapter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-hub-channel/internal/config"
	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/internal/utils"
	"github.com/MKhiriev/go-hub-channel/models"
)

const metaPath = "/api/v1/meta"

type httpMetaClient struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewHTTPMetaClient constructs a resty-backed [MetaClient] for the hub server
// at cfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPMetaClient(cfg config.ClientAdapter, userAgent string, log *logger.Logger) (MetaClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMetaClient{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout, userAgent),
		baseURL: baseURL,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetMeta implements [MetaClient]. It GETs /api/v1/meta and fails with
// [ErrBadMeta] when the response carries no socket host.
func (m *httpMetaClient) GetMeta(ctx context.Context) (models.ServerMeta, error) {
	var meta models.ServerMeta

	resp, err := m.client.R().
		SetContext(ctx).
		SetResult(&meta).
		Get(metaPath)
	if err != nil {
		m.logger.Err(err).Str("func", "httpMetaClient.GetMeta").Msg("meta request failed")
		return models.ServerMeta{}, fmt.Errorf("meta request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerMeta{}, err
	}
	if meta.PhxHost == "" {
		return models.ServerMeta{}, fmt.Errorf("%w: empty phx_host", ErrBadMeta)
	}

	return meta, nil
}

// SocketURLFromMeta builds the socket endpoint for meta. The scheme follows
// the HTTP base URL: https maps to wss, anything else to ws.
func SocketURLFromMeta(httpAddress string, meta models.ServerMeta) (string, error) {
	baseURL, err := normalizeBaseURL(httpAddress)
	if err != nil {
		return "", err
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if meta.PhxHost == "" {
		return "", fmt.Errorf("%w: empty phx_host", ErrBadMeta)
	}

	scheme := "ws"
	if base.Scheme == "https" {
		scheme = "wss"
	}

	host := meta.PhxHost
	if meta.PhxPort != "" {
		host = net.JoinHostPort(meta.PhxHost, meta.PhxPort)
	}

	return (&url.URL{Scheme: scheme, Host: host, Path: "/socket"}).String(), nil
}
