package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hub-channel/internal/adapter"
	"github.com/MKhiriev/go-hub-channel/internal/config"
	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/internal/service"
	"github.com/MKhiriev/go-hub-channel/internal/store"
	"github.com/MKhiriev/go-hub-channel/models"
)

const (
	hubTopicPrefix      = "hub:"
	eventPresenceState  = "presence_state"
	eventHubRefresh     = "hub_refresh"
	joinContextEmbedded = "embed"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	meta     adapter.MetaClient
	logger   *logger.Logger
}

// NewApp creates the client runtime. meta may be nil when cfg carries a
// socket address.
func NewApp(cfg *config.ClientConfig, storages *store.ClientStorages, meta adapter.MetaClient, log *logger.Logger) (*App, error) {
	if cfg == nil || storages == nil || storages.LocalStore == nil {
		return nil, fmt.Errorf("client app: config and storages are required")
	}
	if cfg.Adapter.SocketAddress == "" && meta == nil {
		return nil, fmt.Errorf("client app: no socket address and no meta client")
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		meta:     meta,
		logger:   log,
	}, nil
}

// Run joins the hub and blocks until SIGINT, SIGTERM or SIGQUIT, or until the
// server drops the connection.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	localStore := a.storages.LocalStore

	if err := a.seedStore(ctx); err != nil {
		return err
	}

	socketURL, err := a.resolveSocketURL(ctx)
	if err != nil {
		return err
	}

	header := http.Header{}
	if a.cfg.App.UserAgent != "" {
		header.Set("User-Agent", a.cfg.App.UserAgent)
	}
	socket, err := adapter.Dial(ctx, adapter.SocketConfig{
		URL:               socketURL,
		Header:            header,
		RequestTimeout:    a.cfg.Adapter.RequestTimeout,
		HeartbeatInterval: a.cfg.Adapter.HeartbeatInterval,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("connect hub socket: %w", err)
	}

	profile, err := localStore.Profile(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.run").Msg("failed to read profile, joining without one")
	}

	ch := socket.Channel(hubTopicPrefix+a.cfg.App.HubID, map[string]any{
		"profile": profile,
		"context": map[string]any{joinContextEmbedded: false},
	})

	peers := adapter.NewMemoryPeerAdapter(0, a.logger)
	occupants := newPresence(peers)
	ch.On(eventPresenceState, func(payload json.RawMessage) {
		if err := occupants.setState(payload); err != nil {
			a.logger.Warn().Err(err).Msg("malformed presence state")
		}
	})
	ch.On(eventHubRefresh, func(payload json.RawMessage) {
		a.logger.Info().RawJSON("hub", payload).Msg("hub updated")
	})

	joinReply, err := ch.Join(ctx)
	if err != nil {
		_ = socket.Disconnect()
		return fmt.Errorf("join hub %s: %w", a.cfg.App.HubID, err)
	}
	var joined struct {
		SessionID string `json:"session_id"`
	}
	if err = joinReply.Decode(&joined); err != nil {
		a.logger.Warn().Err(err).Msg("malformed join reply")
	}
	occupants.setSelf(joined.SessionID)
	a.logger.Info().Str("hub_id", a.cfg.App.HubID).Str("session_id", joined.SessionID).Msg("joined hub")

	hub := service.NewHubChannel(localStore, a.cfg.App.HubID,
		service.WithLogger(a.logger.ForHub(a.cfg.App.HubID)),
		service.WithPeerAdapter(peers),
		service.WithDisplayDetector(adapter.StaticDisplayDetector{Name: a.cfg.App.VRDisplay}),
		service.WithUserAgent(a.cfg.App.UserAgent),
		service.WithRefreshLeeway(a.cfg.Workers.RefreshLeeway),
	)
	hub.SetChannel(ch)
	defer func() {
		_ = hub.Close()
		if err := hub.Disconnect(); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("disconnect failed")
		}
	}()

	hub.AddListener(models.EventPermissionsUpdated, func(e models.Event) {
		a.logger.Info().Bool("admin", e.Permissions.IsAdmin()).Msg("permissions updated")
	})
	hub.AddListener(models.EventPermissionsRefreshed, func(models.Event) {
		a.logger.Debug().Msg("permissions refreshed")
	})

	if err = a.authenticate(ctx, hub); err != nil {
		return err
	}

	if err = hub.SendEnteredEvent(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.run").Msg("failed to send entered event")
	}
	if profile.DisplayName != "" {
		if err = hub.SendProfileUpdatedEvent(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("failed to send profile")
		}
	}

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("stopping hub client")
		return nil
	case <-socket.Done():
		if err = socket.Err(); err != nil {
			return fmt.Errorf("hub connection lost: %w", err)
		}
		return nil
	}
}

// seedStore persists settings passed through configuration.
func (a *App) seedStore(ctx context.Context) error {
	localStore := a.storages.LocalStore

	if a.cfg.App.CredentialsToken != "" {
		if err := localStore.SetCredentialsToken(ctx, a.cfg.App.CredentialsToken); err != nil {
			return fmt.Errorf("store credentials token: %w", err)
		}
	}
	if a.cfg.App.DisplayName != "" {
		profile, err := localStore.Profile(ctx)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		profile.DisplayName = a.cfg.App.DisplayName
		if err = localStore.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("store profile: %w", err)
		}
	}
	return nil
}

// authenticate signs in with a stored credentials token, otherwise fetches
// anonymous permissions.
func (a *App) authenticate(ctx context.Context, hub *service.HubChannel) error {
	token, err := a.storages.LocalStore.CredentialsToken(ctx)
	if err != nil {
		return fmt.Errorf("read credentials token: %w", err)
	}

	if token != "" {
		if err = hub.SignIn(ctx, token); err != nil {
			return err
		}
		if hub.SignedIn() {
			return nil
		}
		a.logger.Warn().Msg("stored credentials rejected, continuing anonymously")
	}

	if _, err = hub.FetchPermissions(ctx); err != nil {
		return err
	}
	return nil
}

func (a *App) resolveSocketURL(ctx context.Context) (string, error) {
	if a.cfg.Adapter.SocketAddress != "" {
		return a.cfg.Adapter.SocketAddress, nil
	}

	meta, err := a.meta.GetMeta(ctx)
	if err != nil {
		return "", fmt.Errorf("discover socket host: %w", err)
	}
	a.logger.Debug().Str("phx_host", meta.PhxHost).Str("version", meta.Version).Msg("server meta received")

	return adapter.SocketURLFromMeta(a.cfg.Adapter.HTTPAddress, meta)
}
