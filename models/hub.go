// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PinRequest describes an object to pin in the hub. The file fields are sent
// only when both FileID and PromotionToken are set.
type PinRequest struct {
	ID              string
	GLTFNode        any
	FileID          string
	FileAccessToken string
	PromotionToken  string
}

// Payload builds the "pin" request payload.
func (p PinRequest) Payload() map[string]any {
	payload := map[string]any{
		"id":        p.ID,
		"gltf_node": p.GLTFNode,
	}
	if p.FileID != "" && p.PromotionToken != "" {
		payload["file_id"] = p.FileID
		payload["file_access_token"] = p.FileAccessToken
		payload["promotion_token"] = p.PromotionToken
	}
	return payload
}

// Profile is the local user's profile as broadcast in profile updates.
type Profile struct {
	DisplayName string `json:"displayName,omitempty"`
	AvatarID    string `json:"avatarId,omitempty"`
}

// CreatorAssignmentToken grants creator rights for one hub.
type CreatorAssignmentToken struct {
	HubID                  string    `json:"hub_id"`
	CreatorAssignmentToken string    `json:"creator_assignment_token"`
	CreatedAt              time.Time `json:"created_at"`
}

// ServerMeta is returned by the hub server metadata endpoint.
type ServerMeta struct {
	PhxHost string `json:"phx_host"`
	PhxPort string `json:"phx_port,omitempty"`
	Version string `json:"version,omitempty"`
}

// HostInfo is the response of "get_host": the media host assigned to the hub.
type HostInfo struct {
	Host string         `json:"host"`
	Port int            `json:"port,omitempty"`
	Turn map[string]any `json:"turn,omitempty"`
}
