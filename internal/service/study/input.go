package study

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vadea/vadea-backend/internal/domain"
)

const (
	maxDeckNameLen   = 100
	maxCardFieldLen  = 10_000
	maxTagsPerCard   = 20
	maxMediaPerCard  = 10
	maxListLimit     = 200
	maxAnswerMs      = 600_000
	defaultListLimit = 50
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
}

// Validate checks all fields and collects all errors.
func (i *CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxDeckNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(i.Description) > 1000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if len(i.Color) > 32 {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}
	if len(i.Icon) > 64 {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCardInput holds the parameters for creating a card in a deck.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
	Media  []string
	Tags   []string
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateContent(&i.Front, &i.Back, i.Media, i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCardInput holds a partial update of a card's content.
// Nil fields are left unchanged.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  *string
	Back   *string
	Media  *[]string
	Tags   *[]string
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Front == nil && i.Back == nil && i.Media == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be set"})
	}

	var media, tags []string
	if i.Media != nil {
		media = *i.Media
	}
	if i.Tags != nil {
		tags = *i.Tags
	}
	errs = append(errs, validateContent(i.Front, i.Back, media, tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateContent checks card text fields; nil pointers are skipped.
func validateContent(front, back *string, media, tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if front != nil {
		if strings.TrimSpace(*front) == "" {
			errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
		} else if utf8.RuneCountInString(*front) > maxCardFieldLen {
			errs = append(errs, domain.FieldError{Field: "front", Message: "max 10000 characters"})
		}
	}
	if back != nil {
		if strings.TrimSpace(*back) == "" {
			errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
		} else if utf8.RuneCountInString(*back) > maxCardFieldLen {
			errs = append(errs, domain.FieldError{Field: "back", Message: "max 10000 characters"})
		}
	}
	if len(media) > maxMediaPerCard {
		errs = append(errs, domain.FieldError{Field: "media", Message: "max 10 items"})
	}
	if len(tags) > maxTagsPerCard {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 items"})
	}
	return errs
}

// ListCardsInput holds the parameters for listing a deck's cards.
type ListCardsInput struct {
	DeckID uuid.UUID
	State  *domain.CardState
	Tag    *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.State != nil && !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be NEW, LEARNING, or REVIEW"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartSessionInput holds the parameters for starting a review session.
type StartSessionInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

// AnswerCardInput holds the parameters for answering one card of a session.
type AnswerCardInput struct {
	SessionID  uuid.UUID
	CardID     uuid.UUID
	Grade      domain.ReviewGrade
	DurationMs *int
}

// Validate checks all fields and collects all errors.
func (i *AnswerCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be non-negative"})
	}
	if i.DurationMs != nil && *i.DurationMs > maxAnswerMs {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CompleteSessionInput holds the parameters for completing a session.
type CompleteSessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CompleteSessionInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// ListSessionsInput holds the parameters for listing a deck's sessions.
type ListSessionsInput struct {
	DeckID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
