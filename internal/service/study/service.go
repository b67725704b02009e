package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.ReviewItem, error)
	GetDueItems(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]domain.ReviewItem, error)
	UpsertState(ctx context.Context, userID, itemID uuid.UUID, state domain.SrsState) error
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
	GetByItemID(ctx context.Context, userID, itemID uuid.UUID, limit int) ([]*domain.ReviewLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the session limits of the study service.
type Config struct {
	MaxActiveSessions int
	SessionTTL        time.Duration
}

// Service implements due-item selection, review sessions and standalone
// rating submission on top of the SM-2 calculator.
type Service struct {
	items    itemRepo
	reviews  reviewLogRepo
	tx       txManager
	sessions *sessionRegistry
	clock    clockwork.Clock
	log      *slog.Logger
	params   sm2.Parameters
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	items itemRepo,
	reviews reviewLogRepo,
	tx txManager,
	params sm2.Parameters,
	cfg Config,
) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SM-2 parameters: %w", err)
	}

	log = log.With("service", "study")

	return &Service{
		items:    items,
		reviews:  reviews,
		tx:       tx,
		sessions: newSessionRegistry(cfg.MaxActiveSessions, cfg.SessionTTL, log),
		clock:    clock,
		log:      log,
		params:   params,
	}, nil
}

// persistReview writes the new state and its review log atomically.
func (s *Service) persistReview(ctx context.Context, userID uuid.UUID, item domain.ReviewItem, rating domain.Rating, next domain.SrsState, at time.Time) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.items.UpsertState(txCtx, userID, item.ID, next); err != nil {
			return fmt.Errorf("update state: %w", err)
		}

		if err := s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:         uuid.New(),
			ItemID:     item.ID,
			UserID:     userID,
			Rating:     rating,
			PrevState:  item.State,
			NewState:   next,
			ReviewedAt: at,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		return nil
	})
}

// stateOf returns the stored state, or the default state for an item that
// has never been reviewed.
func (s *Service) stateOf(item *domain.ReviewItem) domain.SrsState {
	if item.HasState {
		return item.State
	}
	return domain.NewSrsState(s.params.InitialEase, item.CreatedAt)
}

// ActiveSessions reports how many review sessions are currently held in memory.
func (s *Service) ActiveSessions() int {
	return s.sessions.len()
}
