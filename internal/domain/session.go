package domain

import (
	"time"
)

// SessionPhase is the state of a review session's state machine.
type SessionPhase string

const (
	SessionPhaseLoading    SessionPhase = "LOADING"
	SessionPhasePresenting SessionPhase = "PRESENTING"
	SessionPhaseFlipped    SessionPhase = "FLIPPED"
	SessionPhaseSubmitting SessionPhase = "SUBMITTING"
	SessionPhaseComplete   SessionPhase = "COMPLETE"
)

func (p SessionPhase) String() string { return string(p) }

func (p SessionPhase) IsValid() bool {
	switch p {
	case SessionPhaseLoading, SessionPhasePresenting, SessionPhaseFlipped,
		SessionPhaseSubmitting, SessionPhaseComplete:
		return true
	}
	return false
}

// RatingCounts holds per-rating counters for a session.
type RatingCounts struct {
	Again int `json:"again"`
	Hard  int `json:"hard"`
	Good  int `json:"good"`
	Easy  int `json:"easy"`
}

// Add increments the counter for r. Invalid ratings are ignored.
func (c *RatingCounts) Add(r Rating) {
	switch r {
	case RatingAgain:
		c.Again++
	case RatingHard:
		c.Hard++
	case RatingGood:
		c.Good++
	case RatingEasy:
		c.Easy++
	}
}

// Total returns the number of ratings counted.
func (c RatingCounts) Total() int {
	return c.Again + c.Hard + c.Good + c.Easy
}

// SessionSummary is computed when a session reaches the Complete phase.
type SessionSummary struct {
	Counts    RatingCounts  `json:"counts"`
	Total     int           `json:"total"`
	StartedAt time.Time     `json:"startedAt"`
	Elapsed   time.Duration `json:"-"`
	ElapsedMs int64         `json:"elapsedMs"`
	// Accuracy is (Good+Easy)/Total in [0, 1]; 0 when nothing was rated.
	Accuracy float64 `json:"accuracy"`
}

// NewSessionSummary aggregates counts into a summary.
func NewSessionSummary(counts RatingCounts, startedAt, finishedAt time.Time) SessionSummary {
	total := counts.Total()
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(counts.Good+counts.Easy) / float64(total)
	}
	elapsed := finishedAt.Sub(startedAt)
	return SessionSummary{
		Counts:    counts,
		Total:     total,
		StartedAt: startedAt,
		Elapsed:   elapsed,
		ElapsedMs: elapsed.Milliseconds(),
		Accuracy:  accuracy,
	}
}
