// Package reviewlog implements the review history repository using
// PostgreSQL. State snapshots are stored as JSONB and history rows are
// scanned with pgxscan.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const insertSQL = `
INSERT INTO review_logs (id, item_id, user_id, rating, prev_state, new_state, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getByItemIDSQL = `
SELECT id, item_id, user_id, rating, prev_state, new_state, reviewed_at
FROM review_logs
WHERE item_id = $1 AND user_id = $2
ORDER BY reviewed_at DESC, id DESC
LIMIT $3`

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a review log. It joins the caller's transaction when the
// context carries one.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) error {
	prev, err := json.Marshal(rl.PrevState)
	if err != nil {
		return fmt.Errorf("marshal prev_state: %w", err)
	}
	next, err := json.Marshal(rl.NewState)
	if err != nil {
		return fmt.Errorf("marshal new_state: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		rl.ID, rl.ItemID, rl.UserID, int16(rl.Rating), prev, next, rl.ReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, "review_log", rl.ID)
	}
	return nil
}

// reviewLogRow mirrors a review_logs row; the state snapshots stay raw
// JSONB until decoded.
type reviewLogRow struct {
	ID         uuid.UUID `db:"id"`
	ItemID     uuid.UUID `db:"item_id"`
	UserID     uuid.UUID `db:"user_id"`
	Rating     int16     `db:"rating"`
	PrevState  []byte    `db:"prev_state"`
	NewState   []byte    `db:"new_state"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

func (r reviewLogRow) toDomain() (*domain.ReviewLog, error) {
	rl := &domain.ReviewLog{
		ID:         r.ID,
		ItemID:     r.ItemID,
		UserID:     r.UserID,
		Rating:     domain.Rating(r.Rating),
		ReviewedAt: r.ReviewedAt,
	}
	if err := json.Unmarshal(r.PrevState, &rl.PrevState); err != nil {
		return nil, fmt.Errorf("review_log %s: unmarshal prev_state: %w", r.ID, err)
	}
	if err := json.Unmarshal(r.NewState, &rl.NewState); err != nil {
		return nil, fmt.Errorf("review_log %s: unmarshal new_state: %w", r.ID, err)
	}
	return rl, nil
}

// GetByItemID returns the newest limit review logs of an item owned by userID.
func (r *Repo) GetByItemID(ctx context.Context, userID, itemID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	var rows []reviewLogRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getByItemIDSQL, itemID, userID, limit); err != nil {
		return nil, postgres.MapError(err, "review_logs of item", itemID)
	}

	logs := make([]*domain.ReviewLog, 0, len(rows))
	for _, row := range rows {
		rl, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, rl)
	}
	return logs, nil
}
