package domain

import (
	"time"
)

// SrsState is the durable scheduling state of one learnable item.
// It is only ever replaced by the output of the state calculator.
type SrsState struct {
	EaseFactor     float64    `json:"easeFactor"`
	IntervalDays   int        `json:"intervalDays"`
	Repetitions    int        `json:"repetitions"`
	DueDate        time.Time  `json:"dueDate"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
}

// NewSrsState returns the state assigned to an item that has never been
// reviewed: it is due as soon as it exists.
func NewSrsState(initialEase float64, createdAt time.Time) SrsState {
	return SrsState{
		EaseFactor:   initialEase,
		IntervalDays: 0,
		Repetitions:  0,
		DueDate:      createdAt,
	}
}

// IsDue reports whether the item may be reviewed at now.
func (s SrsState) IsDue(now time.Time) bool {
	return !s.DueDate.After(now)
}
