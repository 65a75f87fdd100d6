package rest

import (
	"net/http"

	"github.com/vadea/vadea-backend/internal/transport/middleware"
)

const apiPrefix = "/api/v1"

// Handlers groups the endpoint handlers mounted by NewRouter.
// Advisor may be nil, in which case the AI routes are not mounted.
type Handlers struct {
	Health  *HealthHandler
	Study   *StudyHandler
	Advisor *AdvisorHandler
}

// NewRouter mounts all routes under /api/v1. Probes bypass api so they stay
// reachable without credentials and are never rate limited.
func NewRouter(h Handlers, common, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+apiPrefix+"/live", h.Health.Live)
	mux.HandleFunc("GET "+apiPrefix+"/ready", h.Health.Ready)
	mux.HandleFunc("GET "+apiPrefix+"/health", h.Health.Health)

	routes := http.NewServeMux()

	routes.HandleFunc("POST "+apiPrefix+"/decks", h.Study.CreateDeck)
	routes.HandleFunc("GET "+apiPrefix+"/decks", h.Study.ListDecks)
	routes.HandleFunc("GET "+apiPrefix+"/decks/{id}", h.Study.GetDeck)
	routes.HandleFunc("DELETE "+apiPrefix+"/decks/{id}", h.Study.DeleteDeck)

	routes.HandleFunc("POST "+apiPrefix+"/decks/{id}/cards", h.Study.CreateCard)
	routes.HandleFunc("GET "+apiPrefix+"/decks/{id}/cards", h.Study.ListCards)
	routes.HandleFunc("PATCH "+apiPrefix+"/cards/{id}", h.Study.UpdateCard)
	routes.HandleFunc("DELETE "+apiPrefix+"/cards/{id}", h.Study.DeleteCard)

	routes.HandleFunc("POST "+apiPrefix+"/decks/{id}/sessions", h.Study.StartSession)
	routes.HandleFunc("GET "+apiPrefix+"/decks/{id}/sessions", h.Study.ListSessions)
	routes.HandleFunc("GET "+apiPrefix+"/sessions/{id}", h.Study.GetSession)
	routes.HandleFunc("POST "+apiPrefix+"/sessions/{id}/answers", h.Study.AnswerCard)
	routes.HandleFunc("POST "+apiPrefix+"/sessions/{id}/complete", h.Study.CompleteSession)
	routes.HandleFunc("POST "+apiPrefix+"/sessions/{id}/abandon", h.Study.AbandonSession)

	if h.Advisor != nil {
		routes.HandleFunc("POST "+apiPrefix+"/advisor/chat", h.Advisor.Chat)
		routes.HandleFunc("POST "+apiPrefix+"/decks/{id}/generate", h.Advisor.GenerateFlashcards)
	}

	if api == nil {
		api = middleware.Chain()
	}
	mux.Handle(apiPrefix+"/", api(routes))

	if common == nil {
		return mux
	}
	return common(mux)
}
