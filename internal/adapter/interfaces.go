// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer collaborators of the hub
// channel client.
//
// The primary abstraction is [Channel], which decouples the service layer
// from the real-time transport. The package ships a Phoenix v2 channel over
// gorilla/websocket ([Dial], [Socket.Channel]), a resty-based [MetaClient]
// for socket host discovery, an in-memory [PeerAdapter] and a static
// [DisplayDetector].
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic handling (e.g. [ErrReply] for error acknowledgments,
// [ErrSocketClosed] once the connection is gone).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hub-channel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Channel is a joined hub topic on a real-time socket.
type Channel interface {
	// Push sends event with payload and blocks until the server acknowledges
	// it or ctx is done. An "error" acknowledgment is returned together with
	// an error wrapping [ErrReply].
	Push(ctx context.Context, event string, payload any) (models.Reply, error)

	// Cast sends event with payload without waiting for an acknowledgment.
	Cast(event string, payload any) error

	// Params returns a copy of the parameters the channel joins with.
	Params() map[string]any

	// DeleteParams removes keys from the join parameters, so that a later
	// rejoin does not resend them.
	DeleteParams(keys ...string)

	// Disconnect closes the underlying socket.
	Disconnect() error
}

// PeerAdapter is the peer networking layer carrying voice and object sync
// between hub occupants.
type PeerAdapter interface {
	// Block suppresses all inbound traffic from sessionID.
	Block(sessionID string)

	// Unblock resumes inbound traffic from sessionID.
	Unblock(sessionID string)

	// CompleteSync requests a full state sync of the entities owned by
	// sessionID, used after unblocking.
	CompleteSync(sessionID string)

	// Kick asks the peer layer to drop sessionID, proving the right to do so
	// with permsToken.
	Kick(ctx context.Context, sessionID, permsToken string) error

	// InitialOccupantCount returns how many peers were present when the local
	// client joined.
	InitialOccupantCount() int
}

// DisplayDetector enumerates VR displays.
type DisplayDetector interface {
	// PresentingDisplay returns the name of the display currently presenting,
	// and false when none is.
	PresentingDisplay(ctx context.Context) (string, bool, error)
}

// MetaClient fetches hub server metadata over HTTP.
type MetaClient interface {
	// GetMeta returns the server metadata, including the socket host.
	GetMeta(ctx context.Context) (models.ServerMeta, error)
}
