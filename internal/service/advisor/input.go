package advisor

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vadea/vadea-backend/internal/domain"
)

const (
	maxMessageLen    = 4000
	maxHistoryTurns  = 20
	maxSourceTextLen = 20_000
	maxCardsPerCall  = 50
	defaultCardCount = 10
)

// ChatInput is one user message plus the prior conversation.
type ChatInput struct {
	Message string
	History []domain.ChatTurn
}

// Validate checks all fields and collects all errors.
func (i *ChatInput) Validate() error {
	var errs []domain.FieldError

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if utf8.RuneCountInString(msg) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 4000 characters"})
	}

	if len(i.History) > maxHistoryTurns {
		errs = append(errs, domain.FieldError{Field: "history", Message: "max 20 turns"})
	}
	for _, turn := range i.History {
		if !turn.Role.IsValid() {
			errs = append(errs, domain.FieldError{Field: "history", Message: "invalid role"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GenerateFlashcardsInput asks for cards drawn from SourceText to be added to a deck.
// A zero Count uses the default.
type GenerateFlashcardsInput struct {
	DeckID     uuid.UUID
	SourceText string
	Count      int
}

// Validate checks all fields and collects all errors.
func (i *GenerateFlashcardsInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}

	text := strings.TrimSpace(i.SourceText)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "required"})
	} else if utf8.RuneCountInString(text) > maxSourceTextLen {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "max 20000 characters"})
	}

	if i.Count < 0 || i.Count > maxCardsPerCall {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
