package models

// EventKind names a local notification emitted by the hub channel client.
type EventKind string

const (
	// EventPermissionsUpdated fires whenever a new permission token is applied
	// or the permission set is cleared.
	EventPermissionsUpdated EventKind = "permissions_updated"
	// EventPermissionsRefreshed fires after a scheduled token refresh.
	EventPermissionsRefreshed EventKind = "permissions_refreshed"
)

// Event is delivered to listeners. Detail is set for refresh events only.
type Event struct {
	Kind        EventKind
	Permissions Permissions
	Detail      *PermissionsResult
}
