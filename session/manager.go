package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-spillwatch/scenario"
)

// ErrUnknownSession is returned when a session id does not exist (or
// has already expired).
var ErrUnknownSession = errors.New("unknown session")

// Manager owns all live sessions. Sessions are fully isolated from one
// another; the manager only maps ids to sessions and expires idle ones.
type Manager struct {
	store   *scenario.Store
	gateway Gateway
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager. ttl bounds how long an idle
// session is kept before the reaper discards it.
func NewManager(store *scenario.Store, gateway Gateway, ttl time.Duration) *Manager {
	return &Manager{
		store:    store,
		gateway:  gateway,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session: no selection, empty transcript, every
// spill idle.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.store, m.gateway)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	zap.L().Info("session created", zap.String("session", s.ID()))
	return s
}

// Get looks up a live session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrUnknownSession)
	}
	return s, nil
}

// Delete discards a session and closes its subscribers.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrUnknownSession)
	}
	s.close()
	zap.L().Info("session deleted", zap.String("session", id))
	return nil
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ReapIdle removes sessions idle longer than the TTL and returns how
// many were dropped. Run on a schedule by the cron layer.
//
// Idle checks take each session's own lock, and a session can sit in a
// long gateway call, so they run without the manager lock held. The map
// is only locked for the snapshot and the final deletes.
func (m *Manager) ReapIdle() int {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.RLock()
	candidates := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		candidates = append(candidates, s)
	}
	m.mu.RUnlock()

	var expired []*Session
	for _, s := range candidates {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	m.mu.Lock()
	reaped := expired[:0]
	for _, s := range expired {
		// Skip sessions replaced or already deleted since the snapshot.
		if cur, ok := m.sessions[s.ID()]; ok && cur == s {
			delete(m.sessions, s.ID())
			reaped = append(reaped, s)
		}
	}
	m.mu.Unlock()

	for _, s := range reaped {
		s.close()
		zap.L().Info("session expired", zap.String("session", s.ID()))
	}
	return len(reaped)
}
