// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-hub-channel/internal/adapter"
	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/internal/store"
	"github.com/MKhiriev/go-hub-channel/internal/utils"
	"github.com/MKhiriev/go-hub-channel/models"
)

// Channel events.
const (
	eventSignIn         = "sign_in"
	eventSignOut        = "sign_out"
	eventRefreshPerms   = "refresh_perms_token"
	eventGetHost        = "get_host"
	eventPin            = "pin"
	eventUnpin          = "unpin"
	eventSubscribe      = "subscribe"
	eventUnsubscribe    = "unsubscribe"
	eventBlockNAF       = "block_naf"
	eventUnblockNAF     = "unblock_naf"
	eventMessage        = "message"
	eventMute           = "mute"
	eventKick           = "kick"
	eventUpdateScene    = "update_scene"
	eventUpdateHub      = "update_hub"
	eventCloseHub       = "close_hub"
	eventFavorite       = "favorite"
	eventUnfavorite     = "unfavorite"
	eventEntered        = "events:entered"
	eventObjectSpawned  = "events:object_spawned"
	eventProfileUpdated = "events:profile_updated"
	eventRequestSupport = "events:request_support"
)

const (
	defaultMessageKind = "chat"

	// join params dropped on sign-out
	paramPermsToken = "perms_token"
	paramAuthToken  = "auth_token"

	refreshStopTimeout = 5 * time.Second
	storeLookupTimeout = 2 * time.Second
)

// HubChannel is the client side of a hub session: it caches the permissions
// granted by the server, gates privileged actions on them, keeps the
// permission token fresh and wraps the hub channel RPCs.
//
// A HubChannel is safe for concurrent use. Its lock is never held across
// channel, store or peer calls.
type HubChannel struct {
	hubID      string
	store      store.LocalStore
	peers      adapter.PeerAdapter
	display    adapter.DisplayDetector
	userAgent  string
	leeway     time.Duration
	now        func() time.Time
	logger     *logger.Logger
	refreshJob ClientRefreshJob

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu          sync.RWMutex
	channel     adapter.Channel
	signedIn    bool
	permissions models.Permissions
	permsToken  string
	blocked     map[string]struct{}

	events *eventBus
}

// NewHubChannel creates a client for hubID. The client starts signed in when
// localStore holds a credentials token. Bind a channel with SetChannel before
// making channel calls.
func NewHubChannel(localStore store.LocalStore, hubID string, opts ...HubChannelOption) *HubChannel {
	h := &HubChannel{
		hubID:       hubID,
		store:       localStore,
		leeway:      DefaultRefreshLeeway,
		now:         time.Now,
		permissions: models.Permissions{},
		blocked:     make(map[string]struct{}),
		events:      newEventBus(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logger.Nop()
	}
	if h.peers == nil {
		h.peers = adapter.NewMemoryPeerAdapter(0, h.logger)
	}
	if h.display == nil {
		h.display = adapter.StaticDisplayDetector{}
	}

	h.ctx, h.cancel = context.WithCancel(context.Background())
	h.refreshJob = NewClientRefreshJob(h.refreshPermissions)

	ctx, cancel := context.WithTimeout(context.Background(), storeLookupTimeout)
	defer cancel()
	token, err := localStore.CredentialsToken(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "NewHubChannel").Msg("failed to read credentials token")
	}
	h.signedIn = token != ""

	return h
}

// SetChannel binds the joined hub channel.
func (h *HubChannel) SetChannel(ch adapter.Channel) {
	h.mu.Lock()
	h.channel = ch
	h.mu.Unlock()
}

// HubID returns the hub this client is bound to.
func (h *HubChannel) HubID() string {
	return h.hubID
}

// SignedIn reports whether the client is signed in.
func (h *HubChannel) SignedIn() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.signedIn
}

// ── Permissions ──

// Can reports whether the cached permission set grants permission.
func (h *HubChannel) Can(permission string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.permissions.Can(permission)
}

// CanOrWillIfCreator is like Can, but also returns true for hub-creator
// permissions while a creator-assignment token for the hub is stored.
func (h *HubChannel) CanOrWillIfCreator(permission string) bool {
	if slices.Contains(models.HubCreatorPermissions, permission) {
		ctx, cancel := context.WithTimeout(context.Background(), storeLookupTimeout)
		defer cancel()
		if h.creatorAssignmentToken(ctx) != "" {
			return true
		}
	}
	return h.Can(permission)
}

// Permissions returns a copy of the cached permission set.
func (h *HubChannel) Permissions() models.Permissions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.permissions.Clone()
}

// IsAdmin reports whether the permission token grants the admin role.
func (h *HubChannel) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.permissions.IsAdmin()
}

// ── Gated actions ──

// UpdateScene switches the hub scene. Requires update_hub.
func (h *HubChannel) UpdateScene(url string) error {
	return h.castIfPermitted(models.PermissionUpdateHub, eventUpdateScene, map[string]any{"url": url})
}

// Rename renames the hub. Requires update_hub.
func (h *HubChannel) Rename(name string) error {
	return h.castIfPermitted(models.PermissionUpdateHub, eventUpdateHub, map[string]any{"name": name})
}

// CloseHub closes the hub for everyone. Requires close_hub.
func (h *HubChannel) CloseHub() error {
	return h.castIfPermitted(models.PermissionCloseHub, eventCloseHub, nil)
}

func (h *HubChannel) castIfPermitted(permission, event string, payload any) error {
	if !h.Can(permission) {
		h.logger.Warn().Str("event", event).Str("permission", permission).Msg("action not permitted")
		return ErrUnauthorized
	}
	return h.cast(event, payload)
}

// ── Sign-in and token lifecycle ──

// SignIn authenticates the session with a credentials token. A rejected token
// (reason "invalid_token") leaves the client signed out and returns nil.
func (h *HubChannel) SignIn(ctx context.Context, token string) error {
	ch, err := h.boundChannel(eventSignIn)
	if err != nil {
		return err
	}

	reply, err := ch.Push(ctx, eventSignIn, map[string]any{
		"token":                    token,
		"creator_assignment_token": h.creatorAssignmentToken(ctx),
	})
	if err != nil {
		if adapter.ReplyReason(err) == reasonInvalidToken {
			h.logger.Warn().Str("func", "HubChannel.SignIn").Msg("credentials token rejected")
			h.mu.Lock()
			h.signedIn = false
			h.mu.Unlock()
			if err = h.store.SetCredentialsToken(ctx, ""); err != nil {
				h.logger.Err(err).Str("func", "HubChannel.SignIn").Msg("failed to clear rejected credentials token")
			}
			return nil
		}
		h.logger.Err(err).Str("func", "HubChannel.SignIn").Msg("sign in failed")
		return fmt.Errorf("sign in: %w", err)
	}

	permsToken, err := decodePermsToken(reply)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	perms, err := utils.DecodePermissionsToken(permsToken)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SignIn").Msg("failed to decode permission token")
		return fmt.Errorf("sign in: %w: %w", ErrInvalidPermsToken, err)
	}

	h.mu.Lock()
	h.signedIn = true
	h.mu.Unlock()
	h.setPermissions(permsToken, perms)

	if err = h.store.SetCredentialsToken(ctx, token); err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SignIn").Msg("failed to persist credentials token")
	}

	return nil
}

// SignOut ends the authenticated session, drops the tokens from the join
// params, clears the permission set and fetches anonymous permissions.
func (h *HubChannel) SignOut(ctx context.Context) error {
	ch, err := h.boundChannel(eventSignOut)
	if err != nil {
		return err
	}

	if _, err = ch.Push(ctx, eventSignOut, nil); err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SignOut").Msg("sign out failed")
		return fmt.Errorf("sign out: %w", err)
	}

	h.mu.Lock()
	h.signedIn = false
	h.mu.Unlock()

	ch.DeleteParams(paramPermsToken, paramAuthToken)
	h.refreshJob.Cancel()
	h.setPermissions("", models.Permissions{})

	if err = h.store.SetCredentialsToken(ctx, ""); err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SignOut").Msg("failed to clear credentials token")
	}

	if _, err = h.FetchPermissions(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// FetchPermissions requests a fresh permission token and applies it.
func (h *HubChannel) FetchPermissions(ctx context.Context) (models.PermissionsResult, error) {
	ch, err := h.boundChannel(eventRefreshPerms)
	if err != nil {
		return models.PermissionsResult{}, err
	}

	reply, err := ch.Push(ctx, eventRefreshPerms, nil)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.FetchPermissions").Msg("permission refresh failed")
		return models.PermissionsResult{}, fmt.Errorf("fetch permissions: %w", err)
	}

	permsToken, err := decodePermsToken(reply)
	if err != nil {
		return models.PermissionsResult{}, fmt.Errorf("fetch permissions: %w", err)
	}
	perms, err := utils.DecodePermissionsToken(permsToken)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.FetchPermissions").Msg("failed to decode permission token")
		return models.PermissionsResult{}, fmt.Errorf("fetch permissions: %w: %w", ErrInvalidPermsToken, err)
	}

	h.setPermissions(permsToken, perms)

	return models.PermissionsResult{PermsToken: permsToken, Permissions: perms.Clone()}, nil
}

func decodePermsToken(reply models.Reply) (string, error) {
	var resp map[string]any
	if err := reply.Decode(&resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPermsToken, err)
	}
	token, _ := resp[paramPermsToken].(string)
	if token == "" {
		return "", fmt.Errorf("%w: %w", ErrInvalidPermsToken, utils.ErrEmptyToken)
	}
	return token, nil
}

// setPermissions replaces the cached set, reschedules the refresh and emits
// permissions_updated. An empty token clears the set without scheduling.
func (h *HubChannel) setPermissions(permsToken string, perms models.Permissions) {
	h.mu.Lock()
	h.permsToken = permsToken
	h.permissions = perms
	h.mu.Unlock()

	if permsToken != "" {
		h.scheduleRefresh(perms)
	}

	h.events.emit(models.Event{Kind: models.EventPermissionsUpdated, Permissions: perms.Clone()})
}

func (h *HubChannel) scheduleRefresh(perms models.Permissions) {
	exp, ok := perms.ExpiresAt()
	if !ok {
		h.logger.Warn().Str("func", "HubChannel.scheduleRefresh").Msg("permission token has no exp, refresh not scheduled")
		h.refreshJob.Cancel()
		return
	}

	at := exp.Add(-h.leeway)
	h.logger.Debug().Time("refresh_at", at).Msg("permission refresh scheduled")
	h.refreshJob.Schedule(h.ctx, at)
}

func (h *HubChannel) refreshPermissions(ctx context.Context) {
	result, err := h.FetchPermissions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			h.logger.Err(err).Str("func", "HubChannel.refreshPermissions").Msg("scheduled permission refresh failed")
		}
		return
	}

	h.events.emit(models.Event{
		Kind:        models.EventPermissionsRefreshed,
		Permissions: result.Permissions.Clone(),
		Detail:      &result,
	})
}

func (h *HubChannel) creatorAssignmentToken(ctx context.Context) string {
	token, err := h.store.CreatorAssignmentToken(ctx, h.hubID)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.creatorAssignmentToken").Str("hub_id", h.hubID).Msg("failed to read creator assignment token")
		return ""
	}
	return token
}

// ── RPCs ──

// GetHost asks for the media host assigned to the hub. The reply decodes
// into [models.HostInfo].
func (h *HubChannel) GetHost(ctx context.Context) (models.Reply, error) {
	return h.push(ctx, eventGetHost, nil)
}

// Pin pins an object to the hub.
func (h *HubChannel) Pin(ctx context.Context, req models.PinRequest) (models.Reply, error) {
	return h.push(ctx, eventPin, req.Payload())
}

// Unpin unpins an object. fileID may be empty.
func (h *HubChannel) Unpin(id, fileID string) error {
	payload := map[string]any{"id": id}
	if fileID != "" {
		payload["file_id"] = fileID
	}
	return h.cast(eventUnpin, payload)
}

// Subscribe subscribes the account to hub notifications.
func (h *HubChannel) Subscribe(subscription string) error {
	return h.cast(eventSubscribe, map[string]any{"subscription": subscription})
}

// Unsubscribe removes a notification subscription.
func (h *HubChannel) Unsubscribe(ctx context.Context, subscription string) (models.Reply, error) {
	return h.push(ctx, eventUnsubscribe, map[string]any{"subscription": subscription})
}

// AllowNAFTraffic toggles peer traffic relayed through the hub channel.
func (h *HubChannel) AllowNAFTraffic(allow bool) error {
	if allow {
		return h.cast(eventUnblockNAF, nil)
	}
	return h.cast(eventBlockNAF, nil)
}

// SendMessage sends a chat message. An empty body is not sent; an empty kind
// means "chat".
func (h *HubChannel) SendMessage(body, kind string) error {
	if body == "" {
		return nil
	}
	if kind == "" {
		kind = defaultMessageKind
	}
	return h.cast(eventMessage, map[string]any{"body": body, "type": kind})
}

// Mute mutes a peer.
func (h *HubChannel) Mute(sessionID string) error {
	return h.cast(eventMute, map[string]any{"session_id": sessionID})
}

// Kick removes a peer from the hub: a fresh permission token is passed to
// the peer layer before the server is asked to kick.
func (h *HubChannel) Kick(ctx context.Context, sessionID string) error {
	result, err := h.FetchPermissions(ctx)
	if err != nil {
		return fmt.Errorf("kick: %w", err)
	}
	if err = h.peers.Kick(ctx, sessionID, result.PermsToken); err != nil {
		h.logger.Err(err).Str("func", "HubChannel.Kick").Str("session_id", sessionID).Msg("peer kick failed")
		return fmt.Errorf("kick: %w", err)
	}
	return h.cast(eventKick, map[string]any{"session_id": sessionID})
}

// Hide blocks all traffic from a peer.
func (h *HubChannel) Hide(sessionID string) {
	h.mu.Lock()
	h.blocked[sessionID] = struct{}{}
	h.mu.Unlock()

	h.peers.Block(sessionID)
}

// Unhide resumes traffic from a hidden peer and requests a full sync of its
// objects. Unknown sessions are ignored.
func (h *HubChannel) Unhide(sessionID string) {
	h.mu.Lock()
	_, ok := h.blocked[sessionID]
	delete(h.blocked, sessionID)
	h.mu.Unlock()

	if !ok {
		return
	}
	h.peers.Unblock(sessionID)
	h.peers.CompleteSync(sessionID)
}

// IsHidden reports whether a peer is hidden.
func (h *HubChannel) IsHidden(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.blocked[sessionID]
	return ok
}

func (h *HubChannel) RequestSupport() error {
	return h.cast(eventRequestSupport, nil)
}

func (h *HubChannel) Favorite() error {
	return h.cast(eventFavorite, nil)
}

func (h *HubChannel) Unfavorite() error {
	return h.cast(eventUnfavorite, nil)
}

// ── Events ──

// SendEnteredEvent reports entry into the hub and records the entry time.
func (h *HubChannel) SendEnteredEvent(ctx context.Context) error {
	ch, err := h.boundChannel(eventEntered)
	if err != nil {
		return err
	}

	displayType := models.DefaultEntryDisplayType
	name, presenting, err := h.display.PresentingDisplay(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SendEnteredEvent").Msg("failed to detect VR display")
	} else if presenting && name != "" {
		displayType = name
	}

	event := models.EnteredEvent{
		EntryTimingFlags:     h.GetEntryTimingFlags(ctx),
		InitialOccupantCount: h.peers.InitialOccupantCount(),
		EntryDisplayType:     displayType,
		UserAgent:            h.userAgent,
	}
	if err = ch.Cast(eventEntered, event); err != nil {
		return fmt.Errorf("send entered event: %w", err)
	}

	if err = h.store.SetLastEnteredAt(ctx, h.now()); err != nil {
		h.logger.Err(err).Str("func", "HubChannel.SendEnteredEvent").Msg("failed to record entry time")
		return fmt.Errorf("record entry time: %w", err)
	}
	return nil
}

func (h *HubChannel) SendObjectSpawnedEvent(objectType string) error {
	return h.cast(eventObjectSpawned, map[string]any{"object_type": objectType})
}

// SendProfileUpdatedEvent broadcasts the stored profile.
func (h *HubChannel) SendProfileUpdatedEvent(ctx context.Context) error {
	if _, err := h.boundChannel(eventProfileUpdated); err != nil {
		return err
	}

	profile, err := h.store.Profile(ctx)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	return h.cast(eventProfileUpdated, map[string]any{"profile": profile})
}

// AddListener registers fn for local events of kind. The returned func
// removes the listener. Listeners run synchronously on the goroutine that
// changed the permissions and must not call Close.
func (h *HubChannel) AddListener(kind models.EventKind, fn func(models.Event)) (remove func()) {
	return h.events.add(kind, fn)
}

// ── Lifecycle ──

// Disconnect closes the channel's socket.
func (h *HubChannel) Disconnect() error {
	ch, err := h.boundChannel("disconnect")
	if err != nil {
		return err
	}
	return ch.Disconnect()
}

// Close cancels the pending permission refresh and waits for a running one.
// The channel stays connected.
func (h *HubChannel) Close() error {
	h.closeOnce.Do(func() {
		h.cancel()
		done := make(chan struct{})
		go func() {
			h.refreshJob.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(refreshStopTimeout):
			h.logger.Warn().Str("func", "HubChannel.Close").Msg("permission refresh did not stop in time")
		}
	})
	return nil
}

// ── channel helpers ──

func (h *HubChannel) boundChannel(event string) (adapter.Channel, error) {
	h.mu.RLock()
	ch := h.channel
	h.mu.RUnlock()

	if ch == nil {
		h.logger.Warn().Str("event", event).Msg("no hub channel bound")
		return nil, ErrNoChannel
	}
	return ch, nil
}

func (h *HubChannel) push(ctx context.Context, event string, payload any) (models.Reply, error) {
	ch, err := h.boundChannel(event)
	if err != nil {
		return models.Reply{}, err
	}

	reply, err := ch.Push(ctx, event, payload)
	if err != nil {
		h.logger.Err(err).Str("event", event).Msg("push failed")
		return reply, fmt.Errorf("%s: %w", event, err)
	}
	return reply, nil
}

func (h *HubChannel) cast(event string, payload any) error {
	ch, err := h.boundChannel(event)
	if err != nil {
		return err
	}

	if err = ch.Cast(event, payload); err != nil {
		h.logger.Err(err).Str("event", event).Msg("cast failed")
		return fmt.Errorf("%s: %w", event, err)
	}
	return nil
}
