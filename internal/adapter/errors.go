package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrReply is wrapped by every error built from an "error" acknowledgment.
	ErrReply = errors.New("channel replied with error")

	// ErrSocketClosed is returned for operations on a disconnected socket.
	ErrSocketClosed = errors.New("socket closed")

	// ErrReplyTimeout is returned when no acknowledgment arrives within the
	// socket's request timeout.
	ErrReplyTimeout = errors.New("reply timeout")

	// ErrInvalidFrame is returned for frames that are not Phoenix v2 arrays.
	ErrInvalidFrame = errors.New("invalid frame")

	// HTTP errors of the metadata endpoint, see mapHTTPError.
	ErrNotFound            = errors.New("not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadMeta             = errors.New("bad server metadata")
)

// ReplyError carries the event and reason of an "error" acknowledgment.
type ReplyError struct {
	Event  string
	Reason string
}

func (e *ReplyError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Event, ErrReply)
	}
	return fmt.Sprintf("%s: %s: %s", e.Event, ErrReply, e.Reason)
}

// Is makes errors.Is(err, ErrReply) hold for every *ReplyError.
func (e *ReplyError) Is(target error) bool {
	return target == ErrReply
}

// ReplyReason returns the server-provided reason of an error acknowledgment
// somewhere in err's chain, or "" if there is none.
func ReplyReason(err error) string {
	var replyErr *ReplyError
	if errors.As(err, &replyErr) {
		return replyErr.Reason
	}
	return ""
}
