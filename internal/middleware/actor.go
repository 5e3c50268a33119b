package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/repository"
)

type contextKey string

// ContextKeyActor is the key for storing the acting agent in request context.
const ContextKeyActor contextKey = "actor"

// ActorHeader carries the acting agent's id on mutating requests.
const ActorHeader = "X-Agent-ID"

// ActorMiddleware resolves the acting agent from the X-Agent-ID header
// against the roster. This validates actor identity only; there is no
// permission model on top of it.
type ActorMiddleware struct {
	agentRepo *repository.AgentRepository
}

// NewActorMiddleware creates a new ActorMiddleware.
func NewActorMiddleware(agentRepo *repository.AgentRepository) *ActorMiddleware {
	return &ActorMiddleware{agentRepo: agentRepo}
}

// RequireActor rejects requests without a resolvable acting agent and stores
// the agent in the request context for handlers.
func (m *ActorMiddleware) RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agentID := r.Header.Get(ActorHeader)
		if agentID == "" {
			http.Error(w, "missing "+ActorHeader+" header", http.StatusBadRequest)
			return
		}
		if _, err := uuid.Parse(agentID); err != nil {
			http.Error(w, ActorHeader+" must be a valid UUID", http.StatusBadRequest)
			return
		}

		agent, err := m.agentRepo.GetByID(r.Context(), agentID)
		if err != nil {
			if errors.Is(err, domain.ErrAgentNotFound) {
				http.Error(w, "unknown agent", http.StatusNotFound)
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyActor, agent)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext retrieves the acting agent from request context.
func ActorFromContext(ctx context.Context) (*domain.Agent, error) {
	agent, ok := ctx.Value(ContextKeyActor).(*domain.Agent)
	if !ok || agent == nil {
		return nil, domain.ErrAgentNotFound
	}
	return agent, nil
}
