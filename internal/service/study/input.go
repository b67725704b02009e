package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// DueItemsInput holds the parameters for listing due items.
type DueItemsInput struct {
	DeckID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *DueItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxDueLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartSessionInput holds the parameters for starting a review session.
type StartSessionInput struct {
	DeckID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	due := DueItemsInput{DeckID: i.DeckID, Limit: i.Limit}
	return due.Validate()
}

// SubmitRatingInput holds a rating submitted for the current session item.
type SubmitRatingInput struct {
	SessionID uuid.UUID
	Rating    domain.Rating
}

// Validate checks all fields and collects all errors.
func (i *SubmitRatingInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be 0, 1, 2 or 3"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewItemInput holds a rating submitted for a single item outside a session.
type ReviewItemInput struct {
	ItemID uuid.UUID
	Rating domain.Rating
}

// Validate checks all fields and collects all errors.
func (i *ReviewItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be 0, 1, 2 or 3"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ItemHistoryInput holds the parameters for fetching an item's review log.
type ItemHistoryInput struct {
	ItemID uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i *ItemHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
