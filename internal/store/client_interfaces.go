// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hub-channel/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is the persistent client-side state of the hub client.
//
// Missing values are not errors: getters return the zero value (and false
// where a flag is returned).
type LocalStore interface {
	// CredentialsToken returns the stored account credentials token.
	CredentialsToken(ctx context.Context) (string, error)
	// SetCredentialsToken stores token; an empty token removes it.
	SetCredentialsToken(ctx context.Context, token string) error

	// CreatorAssignmentToken returns the creator-assignment token for hubID.
	CreatorAssignmentToken(ctx context.Context, hubID string) (string, error)
	SaveCreatorAssignmentToken(ctx context.Context, token models.CreatorAssignmentToken) error

	// LastEnteredAt returns the last time the user entered a hub.
	LastEnteredAt(ctx context.Context) (time.Time, bool, error)
	SetLastEnteredAt(ctx context.Context, at time.Time) error

	Profile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error

	Close() error
}
