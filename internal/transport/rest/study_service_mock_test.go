package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/service/study"
	"sync"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	CreateDeckFunc      func(ctx context.Context, input study.CreateDeckInput) (*domain.Deck, error)
	ListDecksFunc       func(ctx context.Context) ([]*domain.Deck, error)
	GetDeckFunc         func(ctx context.Context, deckID uuid.UUID) (*study.DeckDetails, error)
	DeleteDeckFunc      func(ctx context.Context, deckID uuid.UUID) error
	CreateCardFunc      func(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	ListCardsFunc       func(ctx context.Context, input study.ListCardsInput) ([]*domain.Card, int, error)
	UpdateCardFunc      func(ctx context.Context, input study.UpdateCardInput) (*domain.Card, error)
	DeleteCardFunc      func(ctx context.Context, cardID uuid.UUID) error
	StartSessionFunc    func(ctx context.Context, input study.StartSessionInput) (*study.SessionQueue, error)
	GetSessionFunc      func(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error)
	ListSessionsFunc    func(ctx context.Context, input study.ListSessionsInput) ([]*domain.ReviewSession, int, error)
	AnswerCardFunc      func(ctx context.Context, input study.AnswerCardInput) (*study.AnswerResult, error)
	CompleteSessionFunc func(ctx context.Context, input study.CompleteSessionInput) (*domain.SessionStats, error)
	AbandonSessionFunc  func(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error)

	calls struct {
		CreateDeck []struct {
			Ctx   context.Context
			Input study.CreateDeckInput
		}
		ListDecks []struct {
			Ctx context.Context
		}
		GetDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		DeleteDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		CreateCard []struct {
			Ctx   context.Context
			Input study.CreateCardInput
		}
		ListCards []struct {
			Ctx   context.Context
			Input study.ListCardsInput
		}
		UpdateCard []struct {
			Ctx   context.Context
			Input study.UpdateCardInput
		}
		DeleteCard []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		StartSession []struct {
			Ctx   context.Context
			Input study.StartSessionInput
		}
		GetSession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		ListSessions []struct {
			Ctx   context.Context
			Input study.ListSessionsInput
		}
		AnswerCard []struct {
			Ctx   context.Context
			Input study.AnswerCardInput
		}
		CompleteSession []struct {
			Ctx   context.Context
			Input study.CompleteSessionInput
		}
		AbandonSession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockCreateDeck      sync.RWMutex
	lockListDecks       sync.RWMutex
	lockGetDeck         sync.RWMutex
	lockDeleteDeck      sync.RWMutex
	lockCreateCard      sync.RWMutex
	lockListCards       sync.RWMutex
	lockUpdateCard      sync.RWMutex
	lockDeleteCard      sync.RWMutex
	lockStartSession    sync.RWMutex
	lockGetSession      sync.RWMutex
	lockListSessions    sync.RWMutex
	lockAnswerCard      sync.RWMutex
	lockCompleteSession sync.RWMutex
	lockAbandonSession  sync.RWMutex
}

func (mock *studyServiceMock) CreateDeck(ctx context.Context, input study.CreateDeckInput) (*domain.Deck, error) {
	if mock.CreateDeckFunc == nil {
		panic("studyServiceMock.CreateDeckFunc: method is nil but studyService.CreateDeck was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CreateDeckInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDeck.Lock()
	mock.calls.CreateDeck = append(mock.calls.CreateDeck, callInfo)
	mock.lockCreateDeck.Unlock()
	return mock.CreateDeckFunc(ctx, input)
}

func (mock *studyServiceMock) CreateDeckCalls() []struct {
	Ctx   context.Context
	Input study.CreateDeckInput
} {
	mock.lockCreateDeck.RLock()
	calls := mock.calls.CreateDeck
	mock.lockCreateDeck.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	if mock.ListDecksFunc == nil {
		panic("studyServiceMock.ListDecksFunc: method is nil but studyService.ListDecks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListDecks.Lock()
	mock.calls.ListDecks = append(mock.calls.ListDecks, callInfo)
	mock.lockListDecks.Unlock()
	return mock.ListDecksFunc(ctx)
}

func (mock *studyServiceMock) ListDecksCalls() []struct {
	Ctx context.Context
} {
	mock.lockListDecks.RLock()
	calls := mock.calls.ListDecks
	mock.lockListDecks.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDeck(ctx context.Context, deckID uuid.UUID) (*study.DeckDetails, error) {
	if mock.GetDeckFunc == nil {
		panic("studyServiceMock.GetDeckFunc: method is nil but studyService.GetDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockGetDeck.Lock()
	mock.calls.GetDeck = append(mock.calls.GetDeck, callInfo)
	mock.lockGetDeck.Unlock()
	return mock.GetDeckFunc(ctx, deckID)
}

func (mock *studyServiceMock) GetDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockGetDeck.RLock()
	calls := mock.calls.GetDeck
	mock.lockGetDeck.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	if mock.DeleteDeckFunc == nil {
		panic("studyServiceMock.DeleteDeckFunc: method is nil but studyService.DeleteDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockDeleteDeck.Lock()
	mock.calls.DeleteDeck = append(mock.calls.DeleteDeck, callInfo)
	mock.lockDeleteDeck.Unlock()
	return mock.DeleteDeckFunc(ctx, deckID)
}

func (mock *studyServiceMock) DeleteDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockDeleteDeck.RLock()
	calls := mock.calls.DeleteDeck
	mock.lockDeleteDeck.RUnlock()
	return calls
}

func (mock *studyServiceMock) CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error) {
	if mock.CreateCardFunc == nil {
		panic("studyServiceMock.CreateCardFunc: method is nil but studyService.CreateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CreateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCard.Lock()
	mock.calls.CreateCard = append(mock.calls.CreateCard, callInfo)
	mock.lockCreateCard.Unlock()
	return mock.CreateCardFunc(ctx, input)
}

func (mock *studyServiceMock) CreateCardCalls() []struct {
	Ctx   context.Context
	Input study.CreateCardInput
} {
	mock.lockCreateCard.RLock()
	calls := mock.calls.CreateCard
	mock.lockCreateCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListCards(ctx context.Context, input study.ListCardsInput) ([]*domain.Card, int, error) {
	if mock.ListCardsFunc == nil {
		panic("studyServiceMock.ListCardsFunc: method is nil but studyService.ListCards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ListCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockListCards.Lock()
	mock.calls.ListCards = append(mock.calls.ListCards, callInfo)
	mock.lockListCards.Unlock()
	return mock.ListCardsFunc(ctx, input)
}

func (mock *studyServiceMock) ListCardsCalls() []struct {
	Ctx   context.Context
	Input study.ListCardsInput
} {
	mock.lockListCards.RLock()
	calls := mock.calls.ListCards
	mock.lockListCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) UpdateCard(ctx context.Context, input study.UpdateCardInput) (*domain.Card, error) {
	if mock.UpdateCardFunc == nil {
		panic("studyServiceMock.UpdateCardFunc: method is nil but studyService.UpdateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.UpdateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCard.Lock()
	mock.calls.UpdateCard = append(mock.calls.UpdateCard, callInfo)
	mock.lockUpdateCard.Unlock()
	return mock.UpdateCardFunc(ctx, input)
}

func (mock *studyServiceMock) UpdateCardCalls() []struct {
	Ctx   context.Context
	Input study.UpdateCardInput
} {
	mock.lockUpdateCard.RLock()
	calls := mock.calls.UpdateCard
	mock.lockUpdateCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if mock.DeleteCardFunc == nil {
		panic("studyServiceMock.DeleteCardFunc: method is nil but studyService.DeleteCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockDeleteCard.Lock()
	mock.calls.DeleteCard = append(mock.calls.DeleteCard, callInfo)
	mock.lockDeleteCard.Unlock()
	return mock.DeleteCardFunc(ctx, cardID)
}

func (mock *studyServiceMock) DeleteCardCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockDeleteCard.RLock()
	calls := mock.calls.DeleteCard
	mock.lockDeleteCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) StartSession(ctx context.Context, input study.StartSessionInput) (*study.SessionQueue, error) {
	if mock.StartSessionFunc == nil {
		panic("studyServiceMock.StartSessionFunc: method is nil but studyService.StartSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.StartSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, input)
}

func (mock *studyServiceMock) StartSessionCalls() []struct {
	Ctx   context.Context
	Input study.StartSessionInput
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.GetSessionFunc == nil {
		panic("studyServiceMock.GetSessionFunc: method is nil but studyService.GetSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, sessionID)
}

func (mock *studyServiceMock) GetSessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListSessions(ctx context.Context, input study.ListSessionsInput) ([]*domain.ReviewSession, int, error) {
	if mock.ListSessionsFunc == nil {
		panic("studyServiceMock.ListSessionsFunc: method is nil but studyService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ListSessionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *studyServiceMock) ListSessionsCalls() []struct {
	Ctx   context.Context
	Input study.ListSessionsInput
} {
	mock.lockListSessions.RLock()
	calls := mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *studyServiceMock) AnswerCard(ctx context.Context, input study.AnswerCardInput) (*study.AnswerResult, error) {
	if mock.AnswerCardFunc == nil {
		panic("studyServiceMock.AnswerCardFunc: method is nil but studyService.AnswerCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.AnswerCardInput
	}{Ctx: ctx, Input: input}
	mock.lockAnswerCard.Lock()
	mock.calls.AnswerCard = append(mock.calls.AnswerCard, callInfo)
	mock.lockAnswerCard.Unlock()
	return mock.AnswerCardFunc(ctx, input)
}

func (mock *studyServiceMock) AnswerCardCalls() []struct {
	Ctx   context.Context
	Input study.AnswerCardInput
} {
	mock.lockAnswerCard.RLock()
	calls := mock.calls.AnswerCard
	mock.lockAnswerCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) CompleteSession(ctx context.Context, input study.CompleteSessionInput) (*domain.SessionStats, error) {
	if mock.CompleteSessionFunc == nil {
		panic("studyServiceMock.CompleteSessionFunc: method is nil but studyService.CompleteSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CompleteSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, callInfo)
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, input)
}

func (mock *studyServiceMock) CompleteSessionCalls() []struct {
	Ctx   context.Context
	Input study.CompleteSessionInput
} {
	mock.lockCompleteSession.RLock()
	calls := mock.calls.CompleteSession
	mock.lockCompleteSession.RUnlock()
	return calls
}

func (mock *studyServiceMock) AbandonSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	if mock.AbandonSessionFunc == nil {
		panic("studyServiceMock.AbandonSessionFunc: method is nil but studyService.AbandonSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockAbandonSession.Lock()
	mock.calls.AbandonSession = append(mock.calls.AbandonSession, callInfo)
	mock.lockAbandonSession.Unlock()
	return mock.AbandonSessionFunc(ctx, sessionID)
}

func (mock *studyServiceMock) AbandonSessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockAbandonSession.RLock()
	calls := mock.calls.AbandonSession
	mock.lockAbandonSession.RUnlock()
	return calls
}
