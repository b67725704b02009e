package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.ReviewItem, error)
	GetDueItemsFunc func(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]domain.ReviewItem, error)
	UpsertStateFunc func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, state domain.SrsState) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		GetDueItems []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID *uuid.UUID
			Now    time.Time
			Limit  int
		}
		UpsertState []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
			State  domain.SrsState
		}
	}
	lockGetByID     sync.RWMutex
	lockGetDueItems sync.RWMutex
	lockUpsertState sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.ReviewItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetDueItems(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]domain.ReviewItem, error) {
	if mock.GetDueItemsFunc == nil {
		panic("itemRepoMock.GetDueItemsFunc: method is nil but itemRepo.GetDueItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID *uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Now: now, Limit: limit}
	mock.lockGetDueItems.Lock()
	mock.calls.GetDueItems = append(mock.calls.GetDueItems, callInfo)
	mock.lockGetDueItems.Unlock()
	return mock.GetDueItemsFunc(ctx, userID, deckID, now, limit)
}

func (mock *itemRepoMock) GetDueItemsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID *uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockGetDueItems.RLock()
	calls := mock.calls.GetDueItems
	mock.lockGetDueItems.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpsertState(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, state domain.SrsState) error {
	if mock.UpsertStateFunc == nil {
		panic("itemRepoMock.UpsertStateFunc: method is nil but itemRepo.UpsertState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
		State  domain.SrsState
	}{Ctx: ctx, UserID: userID, ItemID: itemID, State: state}
	mock.lockUpsertState.Lock()
	mock.calls.UpsertState = append(mock.calls.UpsertState, callInfo)
	mock.lockUpsertState.Unlock()
	return mock.UpsertStateFunc(ctx, userID, itemID, state)
}

func (mock *itemRepoMock) UpsertStateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
	State  domain.SrsState
} {
	mock.lockUpsertState.RLock()
	calls := mock.calls.UpsertState
	mock.lockUpsertState.RUnlock()
	return calls
}
