// Package utils provides small helpers shared across the client: unverified
// permission-token decoding, trace id generation and the resty HTTP client
// constructor.
package utils
