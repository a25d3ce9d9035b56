package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hub-channel/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when there is no token to decode.
var ErrEmptyToken = errors.New("empty token")

// DecodePermissionsToken decodes the claims of a permission token into a
// [models.Permissions] set.
//
// The signature is NOT verified: the token was just handed to us by the hub
// server over the authenticated channel, and the server re-validates it on
// every privileged request. The claims are only used to drive local UI
// decisions and refresh scheduling.
//
// Returns an error if the token is empty or malformed.
func DecodePermissionsToken(token string) (models.Permissions, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("error decoding permissions token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return models.Permissions(claims), nil
}
