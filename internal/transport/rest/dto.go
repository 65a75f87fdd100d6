package rest

import (
	"time"

	"github.com/vadea/vadea-backend/internal/domain"
	"github.com/vadea/vadea-backend/internal/service/study"
)

type deckResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type deckStatsResponse struct {
	Total         int     `json:"total"`
	New           int     `json:"new"`
	Learning      int     `json:"learning"`
	Review        int     `json:"review"`
	Due           int     `json:"due"`
	Mature        int     `json:"mature"`
	RetentionRate float64 `json:"retentionRate"`
}

type deckDetailsResponse struct {
	deckResponse
	Stats deckStatsResponse `json:"stats"`
}

type cardResponse struct {
	ID             string     `json:"id"`
	DeckID         string     `json:"deckId"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Media          []string   `json:"media"`
	Tags           []string   `json:"tags"`
	State          string     `json:"state"`
	IntervalDays   int        `json:"intervalDays"`
	EaseFactor     float64    `json:"easeFactor"`
	Repetitions    int        `json:"repetitions"`
	DueAt          time.Time  `json:"dueAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type sessionResponse struct {
	ID            string     `json:"id"`
	DeckID        string     `json:"deckId"`
	CardIDs       []string   `json:"cardIds"`
	Status        string     `json:"status"`
	CardsReviewed int        `json:"cardsReviewed"`
	CardsCorrect  int        `json:"cardsCorrect"`
	CardsFailed   int        `json:"cardsFailed"`
	CardsHard     int        `json:"cardsHard"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	DurationMs    *int64     `json:"durationMs,omitempty"`
}

type sessionQueueResponse struct {
	Session sessionResponse `json:"session"`
	Cards   []cardResponse  `json:"cards"`
}

type answerResponse struct {
	Card    cardResponse    `json:"card"`
	Session sessionResponse `json:"session"`
}

type sessionStatsResponse struct {
	SessionID     string  `json:"sessionId"`
	Status        string  `json:"status"`
	CardsTotal    int     `json:"cardsTotal"`
	CardsReviewed int     `json:"cardsReviewed"`
	CardsCorrect  int     `json:"cardsCorrect"`
	CardsFailed   int     `json:"cardsFailed"`
	CardsHard     int     `json:"cardsHard"`
	DurationMs    int64   `json:"durationMs"`
	AccuracyRate  float64 `json:"accuracyRate"`
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	FromCache bool   `json:"fromCache"`
}

type generatedCardsResponse struct {
	DeckID    string         `json:"deckId"`
	Cards     []cardResponse `json:"cards"`
	FromCache bool           `json:"fromCache"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDeckDetailsResponse(d *study.DeckDetails) deckDetailsResponse {
	return deckDetailsResponse{
		deckResponse: toDeckResponse(d.Deck),
		Stats: deckStatsResponse{
			Total:         d.Stats.Total,
			New:           d.Stats.New,
			Learning:      d.Stats.Learning,
			Review:        d.Stats.Review,
			Due:           d.Stats.Due,
			Mature:        d.Stats.Mature,
			RetentionRate: d.Stats.RetentionRate,
		},
	}
}

func toCardResponse(c *domain.Card) cardResponse {
	media, tags := c.Media, c.Tags
	if media == nil {
		media = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	return cardResponse{
		ID:             c.ID.String(),
		DeckID:         c.DeckID.String(),
		Front:          c.Front,
		Back:           c.Back,
		Media:          media,
		Tags:           tags,
		State:          c.State.String(),
		IntervalDays:   c.IntervalDays,
		EaseFactor:     c.EaseFactor,
		Repetitions:    c.Repetitions,
		DueAt:          c.DueAt,
		LastReviewedAt: c.LastReviewedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCardResponses(cards []*domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

func toSessionResponse(s *domain.ReviewSession) sessionResponse {
	ids := make([]string, 0, len(s.CardIDs))
	for _, id := range s.CardIDs {
		ids = append(ids, id.String())
	}
	return sessionResponse{
		ID:            s.ID.String(),
		DeckID:        s.DeckID.String(),
		CardIDs:       ids,
		Status:        s.Status.String(),
		CardsReviewed: s.CardsReviewed,
		CardsCorrect:  s.CardsCorrect,
		CardsFailed:   s.CardsFailed,
		CardsHard:     s.CardsHard,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		DurationMs:    s.DurationMs,
	}
}

func toSessionStatsResponse(s *domain.SessionStats) sessionStatsResponse {
	return sessionStatsResponse{
		SessionID:     s.SessionID.String(),
		Status:        s.Status.String(),
		CardsTotal:    s.CardsTotal,
		CardsReviewed: s.CardsReviewed,
		CardsCorrect:  s.CardsCorrect,
		CardsFailed:   s.CardsFailed,
		CardsHard:     s.CardsHard,
		DurationMs:    s.Duration.Milliseconds(),
		AccuracyRate:  s.AccuracyRate,
	}
}
