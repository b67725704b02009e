package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRatingCounts_Add(t *testing.T) {
	t.Parallel()

	var c RatingCounts
	c.Add(RatingAgain)
	c.Add(RatingAgain)
	c.Add(RatingGood)
	c.Add(RatingEasy)
	c.Add(Rating(9))

	want := RatingCounts{Again: 2, Good: 1, Easy: 1}
	if c != want {
		t.Fatalf("counts = %+v, want %+v", c, want)
	}
	if c.Total() != 4 {
		t.Errorf("Total() = %d, want 4", c.Total())
	}
}

func TestNewSessionSummary(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(7 * time.Minute)

	s := NewSessionSummary(RatingCounts{Again: 1, Hard: 1, Good: 1, Easy: 1}, start, end)

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", s.Accuracy)
	}
	if s.Elapsed != 7*time.Minute {
		t.Errorf("Elapsed = %v, want 7m", s.Elapsed)
	}
	if s.ElapsedMs != 420_000 {
		t.Errorf("ElapsedMs = %d, want 420000", s.ElapsedMs)
	}
}

func TestSessionSummary_JSONElapsedInMilliseconds(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewSessionSummary(RatingCounts{Good: 1}, start, start.Add(90*time.Second))

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["elapsedMs"] != float64(90_000) {
		t.Errorf("elapsedMs = %v, want 90000", got["elapsedMs"])
	}
	if _, ok := got["elapsed"]; ok {
		t.Errorf("raw nanosecond duration must not be serialized: %s", b)
	}
}

func TestNewSessionSummary_Empty(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := NewSessionSummary(RatingCounts{}, now, now)
	if s.Total != 0 || s.Accuracy != 0 {
		t.Fatalf("empty summary = %+v, want zero total and accuracy", s)
	}
}

func TestSrsState_IsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSrsState(2.5, now)

	if !s.IsDue(now) {
		t.Error("state due exactly now should be due")
	}
	s.DueDate = now.Add(time.Second)
	if s.IsDue(now) {
		t.Error("state due in the future should not be due")
	}
}
