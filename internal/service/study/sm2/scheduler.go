// Package sm2 implements the SM-2 derived scheduling variant: a pure
// function from (state, rating, review time) to the next state.
package sm2

import (
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// Calculate returns the state that results from rating an item at
// reviewedAt. It performs no I/O and does not validate the input state.
// The only failure is a rating outside the closed set.
func Calculate(p Parameters, state domain.SrsState, rating domain.Rating, reviewedAt time.Time) (domain.SrsState, error) {
	if !rating.IsValid() {
		return domain.SrsState{}, domain.NewValidationError("rating", "must be 0, 1, 2 or 3")
	}

	if rating == domain.RatingAgain {
		return again(p, state, reviewedAt), nil
	}
	return recall(p, state, rating, reviewedAt), nil
}

// again short-circuits the general ease formula.
func again(p Parameters, state domain.SrsState, reviewedAt time.Time) domain.SrsState {
	reviewed := reviewedAt
	return domain.SrsState{
		EaseFactor:     clampEase(p, state.EaseFactor-p.AgainPenalty),
		IntervalDays:   p.AgainInterval,
		Repetitions:    0,
		DueDate:        addDays(reviewedAt, p.AgainInterval),
		LastReviewedAt: &reviewed,
	}
}

func recall(p Parameters, state domain.SrsState, rating domain.Rating, reviewedAt time.Time) domain.SrsState {
	ease := clampEase(p, state.EaseFactor+easeDelta(rating.Quality()))
	reps := state.Repetitions + 1

	var interval int
	switch reps {
	case 1:
		interval = p.FirstInterval
	case 2:
		interval = p.SecondInterval
	default:
		interval = roundDays(float64(state.IntervalDays) * ease)
	}

	switch rating {
	case domain.RatingHard:
		interval = roundDays(float64(interval) * p.HardMultiplier)
	case domain.RatingEasy:
		interval = roundDays(float64(interval) * p.EasyMultiplier)
	}
	interval = max(1, interval)

	reviewed := reviewedAt
	return domain.SrsState{
		EaseFactor:     ease,
		IntervalDays:   interval,
		Repetitions:    reps,
		DueDate:        addDays(reviewedAt, interval),
		LastReviewedAt: &reviewed,
	}
}

// addDays adds calendar days so the wall-clock time survives DST changes.
func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Preview holds the due date each rating would produce.
// The dates are not guaranteed to be ordered: right after the first
// successful review Hard can land later than Good.
type Preview struct {
	Again time.Time `json:"again"`
	Hard  time.Time `json:"hard"`
	Good  time.Time `json:"good"`
	Easy  time.Time `json:"easy"`
}

// DueDate returns the previewed due date for r.
func (pv Preview) DueDate(r domain.Rating) time.Time {
	switch r {
	case domain.RatingAgain:
		return pv.Again
	case domain.RatingHard:
		return pv.Hard
	case domain.RatingGood:
		return pv.Good
	default:
		return pv.Easy
	}
}

// PreviewNextDueDates computes the outcome of every rating without
// touching state.
func PreviewNextDueDates(p Parameters, state domain.SrsState, reviewedAt time.Time) Preview {
	due := func(r domain.Rating) time.Time {
		next, _ := Calculate(p, state, r, reviewedAt) // ratings below are always valid
		return next.DueDate
	}
	return Preview{
		Again: due(domain.RatingAgain),
		Hard:  due(domain.RatingHard),
		Good:  due(domain.RatingGood),
		Easy:  due(domain.RatingEasy),
	}
}
