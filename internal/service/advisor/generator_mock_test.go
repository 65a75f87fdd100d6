package advisor

import (
	"context"
	"github.com/vadea/vadea-backend/internal/domain"
	"sync"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, system string, prompt string, history []domain.ChatTurn) (string, error)

	calls struct {
		Generate []struct {
			Ctx     context.Context
			System  string
			Prompt  string
			History []domain.ChatTurn
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, system string, prompt string, history []domain.ChatTurn) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		System  string
		Prompt  string
		History []domain.ChatTurn
	}{Ctx: ctx, System: system, Prompt: prompt, History: history}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, system, prompt, history)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx     context.Context
	System  string
	Prompt  string
	History []domain.ChatTurn
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
