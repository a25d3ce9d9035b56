package service

import (
	"time"

	"github.com/MKhiriev/go-hub-channel/internal/adapter"
	"github.com/MKhiriev/go-hub-channel/internal/logger"
)

// DefaultRefreshLeeway is how long before expiry a permission token is
// refreshed.
const DefaultRefreshLeeway = time.Minute

// HubChannelOption configures a [HubChannel].
type HubChannelOption func(*HubChannel)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) HubChannelOption {
	return func(h *HubChannel) { h.logger = log }
}

// WithPeerAdapter sets the peer networking layer. Defaults to an in-memory
// adapter with no initial occupants.
func WithPeerAdapter(peers adapter.PeerAdapter) HubChannelOption {
	return func(h *HubChannel) { h.peers = peers }
}

// WithDisplayDetector sets the VR display detector. Defaults to one that
// never reports a presenting display.
func WithDisplayDetector(display adapter.DisplayDetector) HubChannelOption {
	return func(h *HubChannel) { h.display = display }
}

// WithUserAgent sets the user agent reported in "events:entered".
func WithUserAgent(userAgent string) HubChannelOption {
	return func(h *HubChannel) { h.userAgent = userAgent }
}

// WithRefreshLeeway sets how long before token expiry the refresh fires.
// Negative values are ignored.
func WithRefreshLeeway(leeway time.Duration) HubChannelOption {
	return func(h *HubChannel) {
		if leeway >= 0 {
			h.leeway = leeway
		}
	}
}

// WithClock overrides the time source used for entry timing.
func WithClock(now func() time.Time) HubChannelOption {
	return func(h *HubChannel) { h.now = now }
}
