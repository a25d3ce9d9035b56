package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/models"
)

type localStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return &localStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localStore) CredentialsToken(ctx context.Context) (string, error) {
	token, _, err := l.getSetting(ctx, settingCredentials)
	return token, err
}

func (l *localStore) SetCredentialsToken(ctx context.Context, token string) error {
	if token == "" {
		return l.deleteSetting(ctx, settingCredentials)
	}
	return l.setSetting(ctx, settingCredentials, token)
}

func (l *localStore) CreatorAssignmentToken(ctx context.Context, hubID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCreatorTokenQuery(hubID)
	if err != nil {
		log.Err(err).Str("func", "localStore.CreatorAssignmentToken").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		log.Err(err).
			Str("func", "localStore.CreatorAssignmentToken").
			Str("hub_id", hubID).
			Msg("failed to query creator assignment token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (l *localStore) SaveCreatorAssignmentToken(ctx context.Context, token models.CreatorAssignmentToken) error {
	log := logger.FromContext(ctx)

	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = l.now()
	}

	query, args, err := buildUpsertCreatorTokenQuery(token.HubID, token.CreatorAssignmentToken, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		log.Err(err).Str("func", "localStore.SaveCreatorAssignmentToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStore.SaveCreatorAssignmentToken").
			Str("hub_id", token.HubID).
			Msg("failed to save creator assignment token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStore) LastEnteredAt(ctx context.Context) (time.Time, bool, error) {
	value, ok, err := l.getSetting(ctx, settingLastEnteredAt)
	if err != nil || !ok {
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStore.LastEnteredAt").
			Str("value", value).
			Msg("stored entry time is malformed")
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}

	return at, true, nil
}

func (l *localStore) SetLastEnteredAt(ctx context.Context, at time.Time) error {
	return l.setSetting(ctx, settingLastEnteredAt, at.UTC().Format(time.RFC3339Nano))
}

func (l *localStore) Profile(ctx context.Context) (models.Profile, error) {
	value, ok, err := l.getSetting(ctx, settingProfile)
	if err != nil || !ok {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal([]byte(value), &profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localStore.Profile").Msg("stored profile is malformed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}

	return profile, nil
}

func (l *localStore) SaveProfile(ctx context.Context, profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return l.setSetting(ctx, settingProfile, string(data))
}

func (l *localStore) Close() error {
	return l.DB.Close()
}

func (l *localStore) getSetting(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStore.getSetting").Msg("failed to build query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).Str("func", "localStore.getSetting").Str("key", key).Msg("failed to query setting")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (l *localStore) setSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(key, value, l.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		log.Err(err).Str("func", "localStore.setSetting").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStore.setSetting").Str("key", key).Msg("failed to save setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStore) deleteSetting(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSettingQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStore.deleteSetting").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStore.deleteSetting").Str("key", key).Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
