package service

import "errors"

var (
	// ErrUnauthorized is returned by gated actions when the cached permission
	// set does not grant the required permission. Nothing is sent.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoChannel is returned by channel calls made before SetChannel.
	ErrNoChannel = errors.New("no hub channel bound")

	// ErrInvalidPermsToken is returned when an acknowledgment carries a
	// permission token that cannot be decoded.
	ErrInvalidPermsToken = errors.New("invalid permission token")
)

// reasonInvalidToken is the sign_in error reason for a rejected credentials
// token.
const reasonInvalidToken = "invalid_token"
