package advisor

import (
	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
	"sync"
)

var _ cardFactory = &cardFactoryMock{}

type cardFactoryMock struct {
	NewCardFunc func(userID uuid.UUID, deckID uuid.UUID, content domain.CardContent) *domain.Card

	calls struct {
		NewCard []struct {
			UserID  uuid.UUID
			DeckID  uuid.UUID
			Content domain.CardContent
		}
	}
	lockNewCard sync.RWMutex
}

func (mock *cardFactoryMock) NewCard(userID uuid.UUID, deckID uuid.UUID, content domain.CardContent) *domain.Card {
	if mock.NewCardFunc == nil {
		panic("cardFactoryMock.NewCardFunc: method is nil but cardFactory.NewCard was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		DeckID  uuid.UUID
		Content domain.CardContent
	}{UserID: userID, DeckID: deckID, Content: content}
	mock.lockNewCard.Lock()
	mock.calls.NewCard = append(mock.calls.NewCard, callInfo)
	mock.lockNewCard.Unlock()
	return mock.NewCardFunc(userID, deckID, content)
}

func (mock *cardFactoryMock) NewCardCalls() []struct {
	UserID  uuid.UUID
	DeckID  uuid.UUID
	Content domain.CardContent
} {
	mock.lockNewCard.RLock()
	calls := mock.calls.NewCard
	mock.lockNewCard.RUnlock()
	return calls
}
