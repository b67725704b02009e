package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// CardView is the current item of a session as shown to the learner.
// Context is empty until the card is flipped.
type CardView struct {
	ItemID  uuid.UUID
	Term    string
	Context string
	State   domain.SrsState
}

// SessionView is a point-in-time copy of a review session.
type SessionView struct {
	ID           uuid.UUID
	DeckID       *uuid.UUID
	Phase        domain.SessionPhase
	Current      *CardView
	Remaining    int
	InitialCount int
	Stats        domain.RatingCounts
	StartedAt    time.Time
	Summary      *domain.SessionSummary
}

// ReviewResult is the outcome of a single rating submission.
type ReviewResult struct {
	ItemID   uuid.UUID
	Rating   domain.Rating
	NewState domain.SrsState
}

// SubmitResult is the outcome of a rating submitted inside a session.
type SubmitResult struct {
	ReviewResult
	Requeued bool
	Session  SessionView
}
