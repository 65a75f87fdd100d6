package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/service/study"
)

type studyService interface {
	CreateDeck(ctx context.Context, input study.CreateDeckInput) (*domain.Deck, error)
	ListDecks(ctx context.Context) ([]*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*study.DeckDetails, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error

	CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]*domain.Card, int, error)
	UpdateCard(ctx context.Context, input study.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error

	StartSession(ctx context.Context, input study.StartSessionInput) (*study.SessionQueue, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error)
	ListSessions(ctx context.Context, input study.ListSessionsInput) ([]*domain.ReviewSession, int, error)
	AnswerCard(ctx context.Context, input study.AnswerCardInput) (*study.AnswerResult, error)
	CompleteSession(ctx context.Context, input study.CompleteSessionInput) (*domain.SessionStats, error)
	AbandonSession(ctx context.Context, sessionID uuid.UUID) (*domain.ReviewSession, error)
}

// StudyHandler serves deck, card and review session endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type createDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

type cardRequest struct {
	Front *string   `json:"front"`
	Back  *string   `json:"back"`
	Media *[]string `json:"media"`
	Tags  *[]string `json:"tags"`
}

type answerRequest struct {
	CardID     uuid.UUID `json:"cardId"`
	Grade      string    `json:"grade"`
	DurationMs *int      `json:"durationMs"`
}

// ---------------------------------------------------------------------------
// Decks
// ---------------------------------------------------------------------------

// CreateDeck handles POST /decks.
func (h *StudyHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	deck, err := h.svc.CreateDeck(r.Context(), study.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(deck))
}

// ListDecks handles GET /decks.
func (h *StudyHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]deckResponse, 0, len(decks))
	for _, d := range decks {
		items = append(items, toDeckResponse(d))
	}
	writeJSON(w, http.StatusOK, pageResponse[deckResponse]{Items: items, Total: len(items)})
}

// GetDeck handles GET /decks/{id}.
func (h *StudyHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetDeck(r.Context(), deckID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckDetailsResponse(details))
}

// DeleteDeck handles DELETE /decks/{id}.
func (h *StudyHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deckID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

// CreateCard handles POST /decks/{id}/cards.
func (h *StudyHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := study.CreateCardInput{DeckID: deckID}
	if req.Front != nil {
		input.Front = *req.Front
	}
	if req.Back != nil {
		input.Back = *req.Back
	}
	if req.Media != nil {
		input.Media = *req.Media
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
	}

	card, err := h.svc.CreateCard(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// ListCards handles GET /decks/{id}/cards?state=&tag=&limit=&offset=.
func (h *StudyHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := study.ListCardsInput{DeckID: deckID}
	q := r.URL.Query()
	if v := q.Get("state"); v != "" {
		state := domain.CardState(v)
		input.State = &state
	}
	if v := q.Get("tag"); v != "" {
		input.Tag = &v
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cards, total, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[cardResponse]{Items: toCardResponses(cards), Total: total})
}

// UpdateCard handles PATCH /cards/{id}.
func (h *StudyHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), study.UpdateCardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
		Media:  req.Media,
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /cards/{id}.
func (h *StudyHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// StartSession handles POST /decks/{id}/sessions.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	queue, err := h.svc.StartSession(r.Context(), study.StartSessionInput{DeckID: deckID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionQueueResponse{
		Session: toSessionResponse(queue.Session),
		Cards:   toCardResponses(queue.Cards),
	})
}

// ListSessions handles GET /decks/{id}/sessions?limit=&offset=.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := study.ListSessionsInput{DeckID: deckID}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sessions, total, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, toSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, pageResponse[sessionResponse]{Items: items, Total: total})
}

// GetSession handles GET /sessions/{id}.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// AnswerCard handles POST /sessions/{id}/answers.
func (h *StudyHandler) AnswerCard(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.AnswerCard(r.Context(), study.AnswerCardInput{
		SessionID:  sessionID,
		CardID:     req.CardID,
		Grade:      domain.ReviewGrade(req.Grade),
		DurationMs: req.DurationMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Card:    toCardResponse(result.Card),
		Session: toSessionResponse(result.Session),
	})
}

// CompleteSession handles POST /sessions/{id}/complete.
func (h *StudyHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.CompleteSession(r.Context(), study.CompleteSessionInput{SessionID: sessionID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionStatsResponse(stats))
}

// AbandonSession handles POST /sessions/{id}/abandon.
func (h *StudyHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	session, err := h.svc.AbandonSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}
