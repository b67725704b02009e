package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is the learner's self-assessed recall quality for one review.
// The set is closed: only Again, Hard, Good and Easy are valid.
type Rating int

const (
	RatingAgain Rating = iota
	RatingHard
	RatingGood
	RatingEasy
)

var ratingNames = [...]string{
	RatingAgain: "AGAIN",
	RatingHard:  "HARD",
	RatingGood:  "GOOD",
	RatingEasy:  "EASY",
}

// AllRatings lists every valid rating in ordinal order.
var AllRatings = []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

func (r Rating) IsValid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

// Quality maps the rating onto the 0-5 SM-2 quality scale.
func (r Rating) Quality() int {
	return int(r) + 2
}

// ParseRating accepts either the ordinal ("0".."3") or the name
// ("again", "hard", "good", "easy", case-insensitive).
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		r := Rating(n)
		if !r.IsValid() {
			return 0, NewValidationError("rating", "must be 0, 1, 2 or 3")
		}
		return r, nil
	}

	for i, name := range ratingNames {
		if strings.EqualFold(s, name) {
			return Rating(i), nil
		}
	}
	return 0, NewValidationError("rating", "must be AGAIN, HARD, GOOD or EASY")
}
