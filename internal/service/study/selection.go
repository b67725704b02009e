package study

import (
	"bytes"
	"slices"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const (
	DefaultDueLimit = 20
	MaxDueLimit     = 100
)

// SelectDue returns the items due at now, oldest due date first, truncated
// to limit. Items without a stored state get the default state, due at
// their creation time. Ties are broken by item ID so the order is
// deterministic. The input slice is not modified.
func SelectDue(items []domain.ReviewItem, now time.Time, limit int, initialEase float64) []domain.ReviewItem {
	limit = clampLimit(limit)

	due := make([]domain.ReviewItem, 0, min(len(items), limit))
	for _, it := range items {
		if !it.HasState {
			it.State = domain.NewSrsState(initialEase, it.CreatedAt)
		}
		if it.State.IsDue(now) {
			due = append(due, it)
		}
	}

	slices.SortStableFunc(due, func(a, b domain.ReviewItem) int {
		if c := a.State.DueDate.Compare(b.State.DueDate); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultDueLimit
	}
	return min(limit, MaxDueLimit)
}
