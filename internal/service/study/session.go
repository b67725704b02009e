package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// StartSession loads the current due items into a new review session.
// Several sessions per user may be open at the same time.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SessionView{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return SessionView{}, err
	}

	now := s.clock.Now()
	items, err := s.dueItems(ctx, userID, input.DeckID, now, input.Limit)
	if err != nil {
		return SessionView{}, err
	}

	rs := NewReviewSession(uuid.New(), userID, input.DeckID, s.params, now)
	if err := rs.Load(items, now); err != nil {
		return SessionView{}, fmt.Errorf("load session: %w", err)
	}

	// A session with nothing due is complete on arrival and never registered.
	if rs.Phase() != domain.SessionPhaseComplete {
		s.sessions.add(rs)
	}

	s.log.InfoContext(ctx, "review session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", rs.ID.String()),
		slog.Int("items", len(items)),
	)

	return rs.Snapshot(), nil
}

// GetSession returns the current view of a session owned by the caller.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	rs, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return rs.Snapshot(), nil
}

// FlipCard reveals the answer of the current item.
func (s *Service) FlipCard(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	rs, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := rs.Flip(); err != nil {
		return SessionView{}, err
	}
	return rs.Snapshot(), nil
}

// SubmitRating rates the current item of a session. The new state and a
// review log are written in one transaction before the queue advances.
// A failed write leaves the session on the same item, still flipped,
// so the rating can be retried.
func (s *Service) SubmitRating(ctx context.Context, input SubmitRatingInput) (SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SubmitResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return SubmitResult{}, err
	}

	rs, err := s.sessions.get(userID, input.SessionID)
	if err != nil {
		return SubmitResult{}, err
	}

	now := s.clock.Now()
	persist := func(ctx context.Context, item domain.ReviewItem, next domain.SrsState) error {
		return s.persistReview(ctx, userID, item, input.Rating, next, now)
	}

	out, err := rs.Submit(ctx, input.Rating, now, persist)
	if err != nil {
		s.log.WarnContext(ctx, "rating not applied",
			slog.String("user_id", userID.String()),
			slog.String("session_id", rs.ID.String()),
			slog.String("rating", input.Rating.String()),
			slog.String("error", err.Error()),
		)
		return SubmitResult{}, fmt.Errorf("submit rating: %w", err)
	}

	if out.Completed() {
		s.sessions.remove(rs.ID)
		s.log.InfoContext(ctx, "review session completed",
			slog.String("user_id", userID.String()),
			slog.String("session_id", rs.ID.String()),
			slog.Int("reviews", out.Summary.Total),
			slog.Duration("elapsed", out.Summary.Elapsed),
		)
	}

	s.log.InfoContext(ctx, "item reviewed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", out.Item.ID.String()),
		slog.String("rating", out.Rating.String()),
		slog.Int("interval_days", out.NewState.IntervalDays),
		slog.Bool("requeued", out.Requeued),
	)

	return SubmitResult{
		ReviewResult: ReviewResult{
			ItemID:   out.Item.ID,
			Rating:   out.Rating,
			NewState: out.NewState,
		},
		Requeued: out.Requeued,
		Session:  rs.Snapshot(),
	}, nil
}

// AbandonSession drops a session. Ratings already submitted stay persisted.
func (s *Service) AbandonSession(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	rs, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.sessions.remove(rs.ID)

	view := rs.Snapshot()
	s.log.InfoContext(ctx, "review session abandoned",
		slog.String("user_id", rs.UserID.String()),
		slog.String("session_id", rs.ID.String()),
		slog.Int("remaining", view.Remaining),
	)
	return view, nil
}

func (s *Service) session(ctx context.Context, sessionID uuid.UUID) (*ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}
	return s.sessions.get(userID, sessionID)
}

// dueItems fetches candidates from storage and applies the in-memory
// selection, which also fills in default states for unreviewed items.
func (s *Service) dueItems(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]domain.ReviewItem, error) {
	limit = clampLimit(limit)

	candidates, err := s.items.GetDueItems(ctx, userID, deckID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due items: %w", err)
	}

	return SelectDue(candidates, now, limit, s.params.InitialEase), nil
}
