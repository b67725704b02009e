package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc      func(ctx context.Context, log *domain.ReviewLog) error
	GetByItemIDFunc func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, limit int) ([]*domain.ReviewLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.ReviewLog
		}
		GetByItemID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
			Limit  int
		}
	}
	lockCreate      sync.RWMutex
	lockGetByItemID sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) error {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) GetByItemID(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	if mock.GetByItemIDFunc == nil {
		panic("reviewLogRepoMock.GetByItemIDFunc: method is nil but reviewLogRepo.GetByItemID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, ItemID: itemID, Limit: limit}
	mock.lockGetByItemID.Lock()
	mock.calls.GetByItemID = append(mock.calls.GetByItemID, callInfo)
	mock.lockGetByItemID.Unlock()
	return mock.GetByItemIDFunc(ctx, userID, itemID, limit)
}

func (mock *reviewLogRepoMock) GetByItemIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
	Limit  int
} {
	mock.lockGetByItemID.RLock()
	calls := mock.calls.GetByItemID
	mock.lockGetByItemID.RUnlock()
	return calls
}
