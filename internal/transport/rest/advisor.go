package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/service/advisor"
)

type advisorService interface {
	Chat(ctx context.Context, input advisor.ChatInput) (*domain.ChatReply, error)
	GenerateFlashcards(ctx context.Context, input advisor.GenerateFlashcardsInput) (*domain.GeneratedCards, error)
}

// AdvisorHandler serves the AI study advisor endpoints.
type AdvisorHandler struct {
	svc advisorService
	log *slog.Logger
}

// NewAdvisorHandler creates an AdvisorHandler.
func NewAdvisorHandler(svc advisorService, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{svc: svc, log: logger.With("handler", "advisor")}
}

type chatTurnRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string            `json:"message"`
	History []chatTurnRequest `json:"history"`
}

type generateRequest struct {
	SourceText string `json:"sourceText"`
	Count      int    `json:"count"`
}

// Chat handles POST /advisor/chat.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := advisor.ChatInput{Message: req.Message}
	for _, turn := range req.History {
		input.History = append(input.History, domain.ChatTurn{
			Role:    domain.ChatRole(turn.Role),
			Content: turn.Content,
		})
	}

	reply, err := h.svc.Chat(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply.Reply, FromCache: reply.FromCache})
}

// GenerateFlashcards handles POST /decks/{id}/generate.
func (h *AdvisorHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.GenerateFlashcards(r.Context(), advisor.GenerateFlashcardsInput{
		DeckID:     deckID,
		SourceText: req.SourceText,
		Count:      req.Count,
	})
	if errors.Is(err, advisor.ErrNoCardsGenerated) {
		writeError(w, http.StatusBadGateway, "model returned no usable cards")
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, generatedCardsResponse{
		DeckID:    result.DeckID.String(),
		Cards:     toCardResponses(result.Cards),
		FromCache: result.FromCache,
	})
}
