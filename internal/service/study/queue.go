package study

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/sm2"
)

// persistFunc durably records next as the new state of item.
// The session queue is only mutated after it returns nil.
type persistFunc func(ctx context.Context, item domain.ReviewItem, next domain.SrsState) error

// ReviewSession is one learner's in-memory review queue.
//
// Phases: LOADING -> PRESENTING -> FLIPPED -> SUBMITTING -> (PRESENTING | COMPLETE).
// The head of the queue is always the current item. A submission holds the
// session in SUBMITTING while the state is persisted; concurrent calls are
// rejected with domain.ErrSessionBusy instead of queueing up.
type ReviewSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeckID    *uuid.UUID
	StartedAt time.Time

	params sm2.Parameters

	mu           sync.Mutex
	phase        domain.SessionPhase
	queue        []domain.ReviewItem
	initialCount int
	stats        domain.RatingCounts
	summary      *domain.SessionSummary
}

// SubmitOutcome describes the effect of one applied rating.
type SubmitOutcome struct {
	Item     domain.ReviewItem
	Rating   domain.Rating
	NewState domain.SrsState
	Requeued bool
	Summary  *domain.SessionSummary
}

// Completed reports whether the rating emptied the queue.
func (o SubmitOutcome) Completed() bool { return o.Summary != nil }

// NewReviewSession creates a session in the LOADING phase.
func NewReviewSession(id, userID uuid.UUID, deckID *uuid.UUID, params sm2.Parameters, startedAt time.Time) *ReviewSession {
	return &ReviewSession{
		ID:        id,
		UserID:    userID,
		DeckID:    deckID,
		StartedAt: startedAt,
		params:    params,
		phase:     domain.SessionPhaseLoading,
	}
}

// Load fills the queue and leaves LOADING. An empty queue completes the
// session immediately.
func (s *ReviewSession) Load(items []domain.ReviewItem, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.SessionPhaseLoading {
		return domain.NewValidationError("session", "already loaded")
	}

	s.queue = slices.Clone(items)
	s.initialCount = len(items)
	if len(s.queue) == 0 {
		s.complete(now)
		return nil
	}
	s.phase = domain.SessionPhasePresenting
	return nil
}

// Phase returns the current phase.
func (s *ReviewSession) Phase() domain.SessionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current returns the item at the head of the queue.
func (s *ReviewSession) Current() (domain.ReviewItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return domain.ReviewItem{}, false
	}
	return s.queue[0], true
}

// Flip reveals the current item's answer. Flipping an already flipped
// item is a no-op.
func (s *ReviewSession) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case domain.SessionPhasePresenting, domain.SessionPhaseFlipped:
		s.phase = domain.SessionPhaseFlipped
		return nil
	case domain.SessionPhaseSubmitting:
		return domain.ErrSessionBusy
	case domain.SessionPhaseComplete:
		return domain.ErrSessionComplete
	default:
		return domain.NewValidationError("session", "not loaded")
	}
}

// Submit applies rating to the current item. The next state is computed,
// handed to persist, and only on success is the queue updated: Again moves
// the item to the tail with its new state, any other rating retires it.
// On a persistence error the item stays at the head, still flipped.
func (s *ReviewSession) Submit(ctx context.Context, rating domain.Rating, at time.Time, persist persistFunc) (SubmitOutcome, error) {
	if !rating.IsValid() {
		return SubmitOutcome{}, domain.NewValidationError("rating", "must be 0, 1, 2 or 3")
	}

	s.mu.Lock()
	switch s.phase {
	case domain.SessionPhaseFlipped:
	case domain.SessionPhaseSubmitting:
		s.mu.Unlock()
		return SubmitOutcome{}, domain.ErrSessionBusy
	case domain.SessionPhaseComplete:
		s.mu.Unlock()
		return SubmitOutcome{}, domain.ErrSessionComplete
	default:
		s.mu.Unlock()
		return SubmitOutcome{}, domain.NewValidationError("session", "answer must be revealed before rating")
	}

	item := s.queue[0]
	next, err := sm2.Calculate(s.params, item.State, rating, at)
	if err != nil {
		s.mu.Unlock()
		return SubmitOutcome{}, err
	}
	s.phase = domain.SessionPhaseSubmitting
	s.mu.Unlock()

	persistErr := persist(ctx, item, next)

	s.mu.Lock()
	defer s.mu.Unlock()

	if persistErr != nil {
		s.phase = domain.SessionPhaseFlipped
		return SubmitOutcome{}, persistErr
	}

	s.stats.Add(rating)
	item.State = next
	item.HasState = true

	rest := s.queue[1:]
	queue := make([]domain.ReviewItem, 0, len(rest)+1)
	queue = append(queue, rest...)
	requeued := rating == domain.RatingAgain
	if requeued {
		queue = append(queue, item)
	}
	s.queue = queue

	out := SubmitOutcome{Item: item, Rating: rating, NewState: next, Requeued: requeued}
	if len(s.queue) == 0 {
		s.complete(at)
		summary := *s.summary
		out.Summary = &summary
		return out, nil
	}
	s.phase = domain.SessionPhasePresenting
	return out, nil
}

// Summary returns the session summary once COMPLETE.
func (s *ReviewSession) Summary() (domain.SessionSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return domain.SessionSummary{}, false
	}
	return *s.summary, true
}

// Snapshot returns a consistent read-only view of the session.
func (s *ReviewSession) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:           s.ID,
		DeckID:       s.DeckID,
		Phase:        s.phase,
		Remaining:    len(s.queue),
		InitialCount: s.initialCount,
		Stats:        s.stats,
		StartedAt:    s.StartedAt,
	}
	if len(s.queue) > 0 {
		head := s.queue[0]
		card := &CardView{ItemID: head.ID, Term: head.Term, State: head.State}
		// The answer stays hidden until the card is flipped.
		if s.phase == domain.SessionPhaseFlipped || s.phase == domain.SessionPhaseSubmitting {
			card.Context = head.Context
		}
		v.Current = card
	}
	if s.summary != nil {
		summary := *s.summary
		v.Summary = &summary
	}
	return v
}

// complete must be called with mu held.
func (s *ReviewSession) complete(at time.Time) {
	summary := domain.NewSessionSummary(s.stats, s.StartedAt, at)
	s.summary = &summary
	s.phase = domain.SessionPhaseComplete
}
