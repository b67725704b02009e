package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/sm2"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	DueItems(ctx context.Context, input study.DueItemsInput) ([]domain.ReviewItem, error)
	StartSession(ctx context.Context, input study.StartSessionInput) (study.SessionView, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (study.SessionView, error)
	FlipCard(ctx context.Context, sessionID uuid.UUID) (study.SessionView, error)
	SubmitRating(ctx context.Context, input study.SubmitRatingInput) (study.SubmitResult, error)
	AbandonSession(ctx context.Context, sessionID uuid.UUID) (study.SessionView, error)
	ReviewItem(ctx context.Context, input study.ReviewItemInput) (study.ReviewResult, error)
	PreviewItem(ctx context.Context, itemID uuid.UUID) (sm2.Preview, error)
	ItemHistory(ctx context.Context, input study.ItemHistoryInput) ([]*domain.ReviewLog, error)
}

// StudyHandler serves the review REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// ratingValue accepts a rating as its ordinal (2) or its name ("GOOD").
type ratingValue struct {
	domain.Rating
	set bool
}

func (v *ratingValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var (
		r   domain.Rating
		err error
	)
	switch t := raw.(type) {
	case float64:
		r, err = domain.ParseRating(strconv.FormatFloat(t, 'f', -1, 64))
	case string:
		r, err = domain.ParseRating(t)
	default:
		err = domain.NewValidationError("rating", "must be a number or a name")
	}
	if err != nil {
		return err
	}
	v.Rating, v.set = r, true
	return nil
}

type startSessionRequest struct {
	DeckID *uuid.UUID `json:"deckId"`
	Limit  int        `json:"limit"`
}

type ratingRequest struct {
	Rating ratingValue `json:"rating"`
}

type itemResponse struct {
	ID       uuid.UUID       `json:"id"`
	DeckID   *uuid.UUID      `json:"deckId,omitempty"`
	Term     string          `json:"term"`
	Context  string          `json:"context,omitempty"`
	State    domain.SrsState `json:"state"`
	Reviewed bool            `json:"reviewed"`
}

type cardResponse struct {
	ItemID  uuid.UUID       `json:"itemId"`
	Term    string          `json:"term"`
	Context string          `json:"context,omitempty"`
	State   domain.SrsState `json:"state"`
}

type sessionResponse struct {
	ID           uuid.UUID              `json:"id"`
	DeckID       *uuid.UUID             `json:"deckId,omitempty"`
	Phase        string                 `json:"phase"`
	Current      *cardResponse          `json:"current,omitempty"`
	Remaining    int                    `json:"remaining"`
	InitialCount int                    `json:"initialCount"`
	Stats        domain.RatingCounts    `json:"stats"`
	StartedAt    time.Time              `json:"startedAt"`
	Summary      *domain.SessionSummary `json:"summary,omitempty"`
}

type reviewResponse struct {
	ItemID   uuid.UUID        `json:"itemId"`
	Rating   string           `json:"rating"`
	NewState domain.SrsState  `json:"newState"`
	Requeued bool             `json:"requeued,omitempty"`
	Session  *sessionResponse `json:"session,omitempty"`
}

type reviewLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	Rating     string          `json:"rating"`
	PrevState  domain.SrsState `json:"prevState"`
	NewState   domain.SrsState `json:"newState"`
	ReviewedAt time.Time       `json:"reviewedAt"`
}

// DueItems handles GET /v1/due?deck_id=&limit=.
func (h *StudyHandler) DueItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := study.DueItemsInput{}
	var err error
	if input.DeckID, err = optionalUUID(q.Get("deck_id"), "deck_id"); err != nil {
		h.handleError(w, r, err)
		return
	}
	if input.Limit, err = optionalInt(q.Get("limit"), "limit"); err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.svc.DueItems(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, itemResponse{
			ID:       it.ID,
			DeckID:   it.DeckID,
			Term:     it.Term,
			Context:  it.Context,
			State:    it.State,
			Reviewed: it.HasState,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": resp})
}

// StartSession handles POST /v1/sessions.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := h.svc.StartSession(r.Context(), study.StartSessionInput{DeckID: req.DeckID, Limit: req.Limit})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// GetSession handles GET /v1/sessions/{id}.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.svc.GetSession)
}

// FlipCard handles POST /v1/sessions/{id}/flip.
func (h *StudyHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.svc.FlipCard)
}

// AbandonSession handles DELETE /v1/sessions/{id}.
func (h *StudyHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.svc.AbandonSession)
}

// SubmitRating handles POST /v1/sessions/{id}/rating.
func (h *StudyHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	rating, err := h.decodeRating(w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.svc.SubmitRating(r.Context(), study.SubmitRatingInput{SessionID: sessionID, Rating: rating})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session := toSessionResponse(res.Session)
	writeJSON(w, http.StatusOK, reviewResponse{
		ItemID:   res.ItemID,
		Rating:   res.Rating.String(),
		NewState: res.NewState,
		Requeued: res.Requeued,
		Session:  &session,
	})
}

// ReviewItem handles POST /v1/items/{id}/review.
func (h *StudyHandler) ReviewItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	rating, err := h.decodeRating(w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.svc.ReviewItem(r.Context(), study.ReviewItemInput{ItemID: itemID, Rating: rating})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewResponse{
		ItemID:   res.ItemID,
		Rating:   res.Rating.String(),
		NewState: res.NewState,
	})
}

// PreviewItem handles GET /v1/items/{id}/preview.
func (h *StudyHandler) PreviewItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	preview, err := h.svc.PreviewItem(r.Context(), itemID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// ItemHistory handles GET /v1/items/{id}/history?limit=.
func (h *StudyHandler) ItemHistory(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	limit, err := optionalInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	logs, err := h.svc.ItemHistory(r.Context(), study.ItemHistoryInput{ItemID: itemID, Limit: limit})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]reviewLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, reviewLogResponse{
			ID:         l.ID,
			Rating:     l.Rating.String(),
			PrevState:  l.PrevState,
			NewState:   l.NewState,
			ReviewedAt: l.ReviewedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": resp})
}

func (h *StudyHandler) sessionAction(w http.ResponseWriter, r *http.Request, action func(context.Context, uuid.UUID) (study.SessionView, error)) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view, err := action(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

func (h *StudyHandler) decodeRating(w http.ResponseWriter, r *http.Request) (domain.Rating, error) {
	var req ratingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return 0, err
	}
	if !req.Rating.set {
		return 0, domain.NewValidationError("rating", "required")
	}
	return req.Rating.Rating, nil
}

func (h *StudyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func toSessionResponse(v study.SessionView) sessionResponse {
	resp := sessionResponse{
		ID:           v.ID,
		DeckID:       v.DeckID,
		Phase:        v.Phase.String(),
		Remaining:    v.Remaining,
		InitialCount: v.InitialCount,
		Stats:        v.Stats,
		StartedAt:    v.StartedAt,
		Summary:      v.Summary,
	}
	if v.Current != nil {
		resp.Current = &cardResponse{
			ItemID:  v.Current.ItemID,
			Term:    v.Current.Term,
			Context: v.Current.Context,
			State:   v.Current.State,
		}
	}
	return resp
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func optionalUUID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a UUID")
	}
	return &id, nil
}

func optionalInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}
