// Package item implements the review item and SRS state repository using
// PostgreSQL. Reads are built with squirrel and scanned with pgxscan; the
// state upsert is raw SQL because it needs INSERT ... SELECT with an
// ownership filter.
package item

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// dueExpr is the effective due date: items that were never reviewed are
// due from the moment they were created.
const dueExpr = "COALESCE(s.due_date, i.created_at)"

var itemColumns = []string{
	"i.id", "i.user_id", "i.deck_id", "i.term", "i.context", "i.created_at",
	"s.ease_factor", "s.interval_days", "s.repetitions", "s.due_date", "s.last_reviewed_at",
}

const upsertStateSQL = `
INSERT INTO item_states (item_id, ease_factor, interval_days, repetitions, due_date, last_reviewed_at, updated_at)
SELECT i.id, $3::double precision, $4::integer, $5::integer, $6::timestamptz, $7::timestamptz, now()
FROM items i
WHERE i.id = $1 AND i.user_id = $2
ON CONFLICT (item_id) DO UPDATE SET
    ease_factor      = EXCLUDED.ease_factor,
    interval_days    = EXCLUDED.interval_days,
    repetitions      = EXCLUDED.repetitions,
    due_date         = EXCLUDED.due_date,
    last_reviewed_at = EXCLUDED.last_reviewed_at,
    updated_at       = EXCLUDED.updated_at`

// Repo provides item and state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// itemRow is the LEFT JOIN of items and item_states. State columns are
// NULL for items that have never been reviewed.
type itemRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	DeckID         *uuid.UUID `db:"deck_id"`
	Term           string     `db:"term"`
	Context        string     `db:"context"`
	CreatedAt      time.Time  `db:"created_at"`
	EaseFactor     *float64   `db:"ease_factor"`
	IntervalDays   *int       `db:"interval_days"`
	Repetitions    *int       `db:"repetitions"`
	DueDate        *time.Time `db:"due_date"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
}

func (r itemRow) toDomain() domain.ReviewItem {
	it := domain.ReviewItem{
		ID:        r.ID,
		UserID:    r.UserID,
		DeckID:    r.DeckID,
		Term:      r.Term,
		Context:   r.Context,
		CreatedAt: r.CreatedAt,
	}
	if r.EaseFactor == nil || r.IntervalDays == nil || r.Repetitions == nil || r.DueDate == nil {
		return it
	}
	it.HasState = true
	it.State = domain.SrsState{
		EaseFactor:     *r.EaseFactor,
		IntervalDays:   *r.IntervalDays,
		Repetitions:    *r.Repetitions,
		DueDate:        *r.DueDate,
		LastReviewedAt: r.LastReviewedAt,
	}
	return it
}

func selectItems() squirrel.SelectBuilder {
	return psql.Select(itemColumns...).
		From("items i").
		LeftJoin("item_states s ON s.item_id = i.id")
}

// GetByID returns the item with its state. Another user's item is
// reported as not found.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.ReviewItem, error) {
	query, args, err := selectItems().
		Where(squirrel.Eq{"i.id": itemID, "i.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "item", itemID)
	}

	it := row.toDomain()
	return &it, nil
}

// GetDueItems returns up to limit items whose effective due date is not
// after now, earliest first with the item ID as tie-break. A nil deckID
// selects across all decks.
func (r *Repo) GetDueItems(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]domain.ReviewItem, error) {
	qb := selectItems().
		Where(squirrel.Eq{"i.user_id": userID}).
		Where(squirrel.LtOrEq{dueExpr: now})
	if deckID != nil {
		qb = qb.Where(squirrel.Eq{"i.deck_id": *deckID})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.OrderBy(dueExpr+" ASC", "i.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "items of user", userID)
	}

	items := make([]domain.ReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

// UpsertState stores state as the item's scheduling state, replacing any
// previous one. It fails with ErrNotFound if the item does not belong to
// userID.
func (r *Repo) UpsertState(ctx context.Context, userID, itemID uuid.UUID, state domain.SrsState) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertStateSQL,
		itemID, userID,
		state.EaseFactor, state.IntervalDays, state.Repetitions,
		state.DueDate, state.LastReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, "item_state", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}
