// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"time"
)

// Well-known permission names carried by a permission token.
const (
	PermissionUpdateHub          = "update_hub"
	PermissionUpdateHubPromotion = "update_hub_promotion"
	PermissionUpdateRoles        = "update_roles"
	PermissionCloseHub           = "close_hub"
	PermissionMuteUsers          = "mute_users"
	PermissionKickUsers          = "kick_users"
)

// AdminRole is the postgrest_role claim value granted to hub administrators.
const AdminRole = "ret_admin"

// HubCreatorPermissions lists the permissions a client holding a
// creator-assignment token is expected to receive once signed in.
var HubCreatorPermissions = []string{
	PermissionUpdateHub,
	PermissionUpdateHubPromotion,
	PermissionUpdateRoles,
	PermissionCloseHub,
	PermissionMuteUsers,
	PermissionKickUsers,
}

// Permissions is the decoded claim set of a permission token. Boolean claims
// are capabilities; "exp" and "postgrest_role" are read through accessors.
type Permissions map[string]any

// Can reports whether the permission claim is present and true.
func (p Permissions) Can(permission string) bool {
	v, ok := p[permission].(bool)
	return ok && v
}

// ExpiresAt returns the "exp" claim as a time. The second return value is
// false when the claim is missing or not numeric.
func (p Permissions) ExpiresAt() (time.Time, bool) {
	switch exp := p["exp"].(type) {
	case float64:
		return time.UnixMilli(int64(exp * 1000)), true
	case int64:
		return time.Unix(exp, 0), true
	case int:
		return time.Unix(int64(exp), 0), true
	}
	return time.Time{}, false
}

// Role returns the postgrest_role claim, or "" when absent.
func (p Permissions) Role() string {
	role, _ := p["postgrest_role"].(string)
	return role
}

// IsAdmin reports whether the token grants the admin role.
func (p Permissions) IsAdmin() bool {
	return p.Role() == AdminRole
}

// Clone returns an independent copy of p. A nil set clones to an empty set.
func (p Permissions) Clone() Permissions {
	out := make(Permissions, len(p))
	maps.Copy(out, p)
	return out
}

// PermissionsResult is returned by a permission refresh.
type PermissionsResult struct {
	PermsToken  string      `json:"perms_token"`
	Permissions Permissions `json:"permissions"`
}
