package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"sync"
	"time"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error)
	CreateFunc           func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	UpdateContentFunc    func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error)
	UpdateSRSFunc        func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error)
	DeleteFunc           func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error
	ListFunc             func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, filter domain.CardFilter) ([]*domain.Card, int, error)
	GetDueCardsFunc      func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
	GetNewCardsFunc      func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, limit int) ([]*domain.Card, error)
	CountByStateFunc     func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (domain.CardStateCounts, error)
	CountDueFunc         func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, now time.Time) (int, error)
	CountMatureFunc      func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, matureDays int) (int, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Card *domain.Card
		}
		UpdateContent []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			CardID  uuid.UUID
			Content domain.CardContent
		}
		UpdateSRS []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
			Params domain.SRSUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
			Filter domain.CardFilter
		}
		GetDueCards []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
			Now    time.Time
			Limit  int
		}
		GetNewCards []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
			Limit  int
		}
		CountByState []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
		}
		CountDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
			Now    time.Time
		}
		CountMature []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			DeckID     uuid.UUID
			MatureDays int
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateContent    sync.RWMutex
	lockUpdateSRS        sync.RWMutex
	lockDelete           sync.RWMutex
	lockList             sync.RWMutex
	lockGetDueCards      sync.RWMutex
	lockGetNewCards      sync.RWMutex
	lockCountByState     sync.RWMutex
	lockCountDue         sync.RWMutex
	lockCountMature      sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("cardRepoMock.GetByIDForUpdateFunc: method is nil but cardRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card *domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateContent(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error) {
	if mock.UpdateContentFunc == nil {
		panic("cardRepoMock.UpdateContentFunc: method is nil but cardRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		CardID  uuid.UUID
		Content domain.CardContent
	}{Ctx: ctx, UserID: userID, CardID: cardID, Content: content}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, userID, cardID, content)
}

func (mock *cardRepoMock) UpdateContentCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	CardID  uuid.UUID
	Content domain.CardContent
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateSRS(ctx context.Context, userID uuid.UUID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error) {
	if mock.UpdateSRSFunc == nil {
		panic("cardRepoMock.UpdateSRSFunc: method is nil but cardRepo.UpdateSRS was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
		Params domain.SRSUpdateParams
	}{Ctx: ctx, UserID: userID, CardID: cardID, Params: params}
	mock.lockUpdateSRS.Lock()
	mock.calls.UpdateSRS = append(mock.calls.UpdateSRS, callInfo)
	mock.lockUpdateSRS.Unlock()
	return mock.UpdateSRSFunc(ctx, userID, cardID, params)
}

func (mock *cardRepoMock) UpdateSRSCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
	Params domain.SRSUpdateParams
} {
	mock.lockUpdateSRS.RLock()
	calls := mock.calls.UpdateSRS
	mock.lockUpdateSRS.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) List(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, filter domain.CardFilter) ([]*domain.Card, int, error) {
	if mock.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
		Filter domain.CardFilter
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, deckID, filter)
}

func (mock *cardRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
	Filter domain.CardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetDueCards(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	if mock.GetDueCardsFunc == nil {
		panic("cardRepoMock.GetDueCardsFunc: method is nil but cardRepo.GetDueCards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Now: now, Limit: limit}
	mock.lockGetDueCards.Lock()
	mock.calls.GetDueCards = append(mock.calls.GetDueCards, callInfo)
	mock.lockGetDueCards.Unlock()
	return mock.GetDueCardsFunc(ctx, userID, deckID, now, limit)
}

func (mock *cardRepoMock) GetDueCardsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockGetDueCards.RLock()
	calls := mock.calls.GetDueCards
	mock.lockGetDueCards.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetNewCards(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, limit int) ([]*domain.Card, error) {
	if mock.GetNewCardsFunc == nil {
		panic("cardRepoMock.GetNewCardsFunc: method is nil but cardRepo.GetNewCards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Limit: limit}
	mock.lockGetNewCards.Lock()
	mock.calls.GetNewCards = append(mock.calls.GetNewCards, callInfo)
	mock.lockGetNewCards.Unlock()
	return mock.GetNewCardsFunc(ctx, userID, deckID, limit)
}

func (mock *cardRepoMock) GetNewCardsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
	Limit  int
} {
	mock.lockGetNewCards.RLock()
	calls := mock.calls.GetNewCards
	mock.lockGetNewCards.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountByState(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (domain.CardStateCounts, error) {
	if mock.CountByStateFunc == nil {
		panic("cardRepoMock.CountByStateFunc: method is nil but cardRepo.CountByState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
	}{Ctx: ctx, UserID: userID, DeckID: deckID}
	mock.lockCountByState.Lock()
	mock.calls.CountByState = append(mock.calls.CountByState, callInfo)
	mock.lockCountByState.Unlock()
	return mock.CountByStateFunc(ctx, userID, deckID)
}

func (mock *cardRepoMock) CountByStateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockCountByState.RLock()
	calls := mock.calls.CountByState
	mock.lockCountByState.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountDue(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, now time.Time) (int, error) {
	if mock.CountDueFunc == nil {
		panic("cardRepoMock.CountDueFunc: method is nil but cardRepo.CountDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, DeckID: deckID, Now: now}
	mock.lockCountDue.Lock()
	mock.calls.CountDue = append(mock.calls.CountDue, callInfo)
	mock.lockCountDue.Unlock()
	return mock.CountDueFunc(ctx, userID, deckID, now)
}

func (mock *cardRepoMock) CountDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
	Now    time.Time
} {
	mock.lockCountDue.RLock()
	calls := mock.calls.CountDue
	mock.lockCountDue.RUnlock()
	return calls
}

func (mock *cardRepoMock) CountMature(ctx context.Context, userID uuid.UUID, deckID uuid.UUID, matureDays int) (int, error) {
	if mock.CountMatureFunc == nil {
		panic("cardRepoMock.CountMatureFunc: method is nil but cardRepo.CountMature was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		DeckID     uuid.UUID
		MatureDays int
	}{Ctx: ctx, UserID: userID, DeckID: deckID, MatureDays: matureDays}
	mock.lockCountMature.Lock()
	mock.calls.CountMature = append(mock.calls.CountMature, callInfo)
	mock.lockCountMature.Unlock()
	return mock.CountMatureFunc(ctx, userID, deckID, matureDays)
}

func (mock *cardRepoMock) CountMatureCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	DeckID     uuid.UUID
	MatureDays int
} {
	mock.lockCountMature.RLock()
	calls := mock.calls.CountMature
	mock.lockCountMature.RUnlock()
	return calls
}
