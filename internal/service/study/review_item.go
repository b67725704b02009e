package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/sm2"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

const defaultHistoryLimit = 50

// DueItems returns the caller's items that are due now, most overdue first.
func (s *Service) DueItems(ctx context.Context, input DueItemsInput) ([]domain.ReviewItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.dueItems(ctx, userID, input.DeckID, s.clock.Now(), input.Limit)
}

// ReviewItem rates a single item outside of any session. Only items that
// already have a stored state can be reviewed this way.
func (s *Service) ReviewItem(ctx context.Context, input ReviewItemInput) (ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ReviewResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ReviewResult{}, err
	}

	item, err := s.items.GetByID(ctx, userID, input.ItemID)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("get item: %w", err)
	}
	if !item.HasState {
		return ReviewResult{}, fmt.Errorf("state of item %s: %w", item.ID, domain.ErrNotFound)
	}

	now := s.clock.Now()
	next, err := sm2.Calculate(s.params, item.State, input.Rating, now)
	if err != nil {
		return ReviewResult{}, err
	}

	if err := s.persistReview(ctx, userID, *item, input.Rating, next, now); err != nil {
		return ReviewResult{}, fmt.Errorf("persist review: %w", err)
	}

	s.log.InfoContext(ctx, "item reviewed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("rating", input.Rating.String()),
		slog.Int("interval_days", next.IntervalDays),
	)

	return ReviewResult{ItemID: item.ID, Rating: input.Rating, NewState: next}, nil
}

// PreviewItem returns the due date each rating would produce if applied now.
// Nothing is persisted.
func (s *Service) PreviewItem(ctx context.Context, itemID uuid.UUID) (sm2.Preview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return sm2.Preview{}, domain.ErrUnauthorized
	}
	if itemID == uuid.Nil {
		return sm2.Preview{}, domain.NewValidationError("item_id", "required")
	}

	item, err := s.items.GetByID(ctx, userID, itemID)
	if err != nil {
		return sm2.Preview{}, fmt.Errorf("get item: %w", err)
	}

	return sm2.PreviewNextDueDates(s.params, s.stateOf(item), s.clock.Now()), nil
}

// ItemHistory returns the review log of an item, newest first.
func (s *Service) ItemHistory(ctx context.Context, input ItemHistoryInput) ([]*domain.ReviewLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	// Ownership check: another user's item is reported as missing.
	if _, err := s.items.GetByID(ctx, userID, input.ItemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	logs, err := s.reviews.GetByItemID(ctx, userID, input.ItemID, limit)
	if err != nil {
		return nil, fmt.Errorf("get review logs: %w", err)
	}
	return logs, nil
}
