package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"sync"
	"time"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc           func(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error)
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	UpdateCountersFunc   func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, counters domain.SessionCounters) (*domain.ReviewSession, error)
	FinalizeFunc         func(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, status domain.SessionStatus, endedAt time.Time, durationMs int64) (*domain.ReviewSession, error)
	ListByDeckFunc       func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, limit int, offset int) ([]*domain.ReviewSession, int, error)
	RetentionFunc        func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (int, int, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Session *domain.ReviewSession
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
		UpdateCounters []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SessionID uuid.UUID
			Counters  domain.SessionCounters
		}
		Finalize []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			SessionID  uuid.UUID
			Status     domain.SessionStatus
			EndedAt    time.Time
			DurationMs int64
		}
		ListByDeck []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
			Limit  int
			Offset int
		}
		Retention []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateCounters   sync.RWMutex
	lockFinalize         sync.RWMutex
	lockListByDeck       sync.RWMutex
	lockRetention        sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session *domain.ReviewSession
	}{Ctx: ctx, Session: session}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Session *domain.ReviewSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("sessionRepoMock.GetByIDForUpdateFunc: method is nil but sessionRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{Ctx: ctx, UserID: userID, SessionID: sessionID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateCounters(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, counters domain.SessionCounters) (*domain.ReviewSession, error) {
	if mock.UpdateCountersFunc == nil {
		panic("sessionRepoMock.UpdateCountersFunc: method is nil but sessionRepo.UpdateCounters was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SessionID uuid.UUID
		Counters  domain.SessionCounters
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Counters: counters}
	mock.lockUpdateCounters.Lock()
	mock.calls.UpdateCounters = append(mock.calls.UpdateCounters, callInfo)
	mock.lockUpdateCounters.Unlock()
	return mock.UpdateCountersFunc(ctx, userID, sessionID, counters)
}

func (mock *sessionRepoMock) UpdateCountersCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SessionID uuid.UUID
	Counters  domain.SessionCounters
} {
	mock.lockUpdateCounters.RLock()
	calls := mock.calls.UpdateCounters
	mock.lockUpdateCounters.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Finalize(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, status domain.SessionStatus, endedAt time.Time, durationMs int64) (*domain.ReviewSession, error) {
	if mock.FinalizeFunc == nil {
		panic("sessionRepoMock.FinalizeFunc: method is nil but sessionRepo.Finalize was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		SessionID  uuid.UUID
		Status     domain.SessionStatus
		EndedAt    time.Time
		DurationMs int64
	}{Ctx: ctx, UserID: userID, SessionID: sessionID, Status: status, EndedAt: endedAt, DurationMs: durationMs}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, userID, sessionID, status, endedAt, durationMs)
}

func (mock *sessionRepoMock) FinalizeCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	SessionID  uuid.UUID
	Status     domain.SessionStatus
	EndedAt    time.Time
	DurationMs int64
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListByDeck(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, limit int, offset int) ([]*domain.ReviewSession, int, error) {
	if mock.ListByDeckFunc == nil {
		panic("sessionRepoMock.ListByDeckFunc: method is nil but sessionRepo.ListByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Limit: limit, Offset: offset}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, userID, deckID, limit, offset)
}

func (mock *sessionRepoMock) ListByDeckCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Retention(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (int, int, error) {
	if mock.RetentionFunc == nil {
		panic("sessionRepoMock.RetentionFunc: method is nil but sessionRepo.Retention was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
	}{Ctx: ctx, UserID: userID, DeckID: deckID}
	mock.lockRetention.Lock()
	mock.calls.Retention = append(mock.calls.Retention, callInfo)
	mock.lockRetention.Unlock()
	return mock.RetentionFunc(ctx, userID, deckID)
}

func (mock *sessionRepoMock) RetentionCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockRetention.RLock()
	calls := mock.calls.Retention
	mock.lockRetention.RUnlock()
	return calls
}
