package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable        = "settings"
	creatorTokensTable   = "creator_assignment_tokens"
	settingCredentials   = "credentials_token"
	settingLastEnteredAt = "last_entered_at"
	settingProfile       = "profile"
)

// SQLite uses "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSettingQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(key, value, updatedAt string) (string, []any, error) {
	return psql.
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSettingQuery(key string) (string, []any, error) {
	return psql.
		Delete(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildGetCreatorTokenQuery(hubID string) (string, []any, error) {
	return psql.
		Select("creator_assignment_token").
		From(creatorTokensTable).
		Where(sq.Eq{"hub_id": hubID}).
		ToSql()
}

func buildUpsertCreatorTokenQuery(hubID, token, createdAt string) (string, []any, error) {
	return psql.
		Insert(creatorTokensTable).
		Columns("hub_id", "creator_assignment_token", "created_at").
		Values(hubID, token, createdAt).
		Suffix("ON CONFLICT(hub_id) DO UPDATE SET creator_assignment_token = excluded.creator_assignment_token, created_at = excluded.created_at").
		ToSql()
}
