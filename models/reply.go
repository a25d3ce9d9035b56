// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Reply statuses sent by the hub server in acknowledgments.
const (
	ReplyStatusOK    = "ok"
	ReplyStatusError = "error"
)

// Reply is a channel acknowledgment. Response holds the raw JSON payload so
// callers decode only what they need.
type Reply struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response,omitempty"`
}

// OK reports whether the reply acknowledges success.
func (r Reply) OK() bool {
	return r.Status == ReplyStatusOK
}

// Decode unmarshals the response payload into v. An empty response leaves v
// untouched.
func (r Reply) Decode(v any) error {
	if len(r.Response) == 0 {
		return nil
	}
	return json.Unmarshal(r.Response, v)
}

// Reason returns the "reason" field of an error response, if any.
func (r Reply) Reason() string {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = r.Decode(&body)
	return body.Reason
}
