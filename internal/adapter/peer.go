package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-hub-channel/internal/logger"
)

// MemoryPeerAdapter is a [PeerAdapter] for clients that carry no media: it
// tracks blocked sessions and the initial occupant count in memory and logs
// kick requests.
type MemoryPeerAdapter struct {
	logger *logger.Logger

	mu               sync.RWMutex
	blocked          map[string]struct{}
	initialOccupants int
	pendingFullSyncs map[string]int
}

// NewMemoryPeerAdapter returns an adapter reporting initialOccupants peers
// present at join time.
func NewMemoryPeerAdapter(initialOccupants int, log *logger.Logger) *MemoryPeerAdapter {
	return &MemoryPeerAdapter{
		logger:           log,
		blocked:          make(map[string]struct{}),
		initialOccupants: initialOccupants,
		pendingFullSyncs: make(map[string]int),
	}
}

// Block implements [PeerAdapter].
func (p *MemoryPeerAdapter) Block(sessionID string) {
	p.mu.Lock()
	p.blocked[sessionID] = struct{}{}
	p.mu.Unlock()

	p.logger.Debug().Str("session_id", sessionID).Msg("peer blocked")
}

// Unblock implements [PeerAdapter].
func (p *MemoryPeerAdapter) Unblock(sessionID string) {
	p.mu.Lock()
	delete(p.blocked, sessionID)
	p.mu.Unlock()

	p.logger.Debug().Str("session_id", sessionID).Msg("peer unblocked")
}

// CompleteSync implements [PeerAdapter].
func (p *MemoryPeerAdapter) CompleteSync(sessionID string) {
	p.mu.Lock()
	p.pendingFullSyncs[sessionID]++
	p.mu.Unlock()
}

// Kick implements [PeerAdapter].
func (p *MemoryPeerAdapter) Kick(_ context.Context, sessionID, permsToken string) error {
	p.logger.Info().
		Str("session_id", sessionID).
		Bool("has_perms_token", permsToken != "").
		Msg("peer kick requested")
	return nil
}

// InitialOccupantCount implements [PeerAdapter].
func (p *MemoryPeerAdapter) InitialOccupantCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialOccupants
}

// SetInitialOccupantCount records how many peers were present at join time.
func (p *MemoryPeerAdapter) SetInitialOccupantCount(n int) {
	p.mu.Lock()
	p.initialOccupants = max(n, 0)
	p.mu.Unlock()
}

// IsBlocked reports whether traffic from sessionID is suppressed.
func (p *MemoryPeerAdapter) IsBlocked(sessionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.blocked[sessionID]
	return ok
}

// FullSyncRequests returns how many full syncs were requested for sessionID.
func (p *MemoryPeerAdapter) FullSyncRequests(sessionID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pendingFullSyncs[sessionID]
}
