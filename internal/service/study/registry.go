package study

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const (
	defaultMaxActiveSessions = 10_000
	defaultSessionTTL        = 2 * time.Hour
)

// sessionRegistry keeps live review sessions in process memory. Sessions
// are never persisted: eviction, expiry or a restart simply drops them.
type sessionRegistry struct {
	lru *expirable.LRU[uuid.UUID, *ReviewSession]
}

func newSessionRegistry(maxActive int, ttl time.Duration, log *slog.Logger) *sessionRegistry {
	if maxActive <= 0 {
		maxActive = defaultMaxActiveSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	onEvict := func(id uuid.UUID, rs *ReviewSession) {
		log.Debug("review session dropped",
			slog.String("session_id", id.String()),
			slog.String("user_id", rs.UserID.String()),
		)
	}

	return &sessionRegistry{lru: expirable.NewLRU(maxActive, onEvict, ttl)}
}

func (r *sessionRegistry) add(rs *ReviewSession) {
	r.lru.Add(rs.ID, rs)
}

// get returns the session only if it belongs to userID.
func (r *sessionRegistry) get(userID, sessionID uuid.UUID) (*ReviewSession, error) {
	rs, ok := r.lru.Get(sessionID)
	if !ok || rs.UserID != userID {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return rs, nil
}

func (r *sessionRegistry) remove(sessionID uuid.UUID) {
	r.lru.Remove(sessionID)
}

func (r *sessionRegistry) len() int {
	return r.lru.Len()
}
