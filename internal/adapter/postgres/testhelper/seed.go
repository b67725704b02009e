package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		id, "learner-"+uniqueSuffix()+"@example.com", "Learner",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedDeck inserts a deck owned by userID and returns its ID.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, user_id, name) VALUES ($1, $2, $3)`,
		id, userID, "deck-"+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return id
}

// SeedItem inserts an item without scheduling state.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, deckID *uuid.UUID, term string, createdAt time.Time) domain.ReviewItem {
	t.Helper()

	it := domain.ReviewItem{
		ID:        uuid.New(),
		UserID:    userID,
		DeckID:    deckID,
		Term:      term,
		Context:   term + " used in a sentence",
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, user_id, deck_id, term, context, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.UserID, it.DeckID, it.Term, it.Context, it.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return it
}

// SeedState writes a state row for an existing item.
func SeedState(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, s domain.SrsState) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO item_states (item_id, ease_factor, interval_days, repetitions, due_date, last_reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		itemID, s.EaseFactor, s.IntervalDays, s.Repetitions, s.DueDate, s.LastReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedState: %v", err)
	}
}
