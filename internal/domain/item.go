package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewItem is a vocabulary item together with its scheduling state.
// HasState is false when no state row exists yet and State was synthesized.
type ReviewItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeckID    *uuid.UUID
	Term      string
	Context   string
	CreatedAt time.Time
	State     SrsState
	HasState  bool
}

// ReviewLog records one applied rating.
type ReviewLog struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	UserID     uuid.UUID
	Rating     Rating
	PrevState  SrsState
	NewState   SrsState
	ReviewedAt time.Time
}
