package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/agentdeck/agentdeck/docs" // Import generated docs
	"github.com/agentdeck/agentdeck/internal/handler/dto"
	"github.com/agentdeck/agentdeck/internal/metrics"
	"github.com/agentdeck/agentdeck/internal/middleware"
	"github.com/agentdeck/agentdeck/internal/repository"
	"github.com/agentdeck/agentdeck/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool                *pgxpool.Pool
	taskService         *service.TaskService
	notificationService *service.NotificationService
	agentService        *service.AgentService
	taskRepo            *repository.TaskRepository
	activityRepo        *repository.ActivityRepository
	notificationRepo    *repository.NotificationRepository
	agentRepo           *repository.AgentRepository
	actorMiddleware     *middleware.ActorMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	// Create repositories
	taskRepo := repository.NewTaskRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	agentRepo := repository.NewAgentRepository(pool)

	// Create services
	taskService := service.NewTaskService(pool, taskRepo, activityRepo, notificationRepo, agentRepo)
	notificationService := service.NewNotificationService(pool, notificationRepo, agentRepo)
	agentService := service.NewAgentService(pool, agentRepo, activityRepo)

	// Create middleware
	actorMiddleware := middleware.NewActorMiddleware(agentRepo)

	return &Handler{
		pool:                pool,
		taskService:         taskService,
		notificationService: notificationService,
		agentService:        agentService,
		taskRepo:            taskRepo,
		activityRepo:        activityRepo,
		notificationRepo:    notificationRepo,
		agentRepo:           agentRepo,
		actorMiddleware:     actorMiddleware,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check and metrics
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Task lifecycle. Reads are open; mutations require an acting agent.
	mux.HandleFunc("GET /api/v1/tasks", h.handleListTasks)
	mux.HandleFunc("GET /api/v1/tasks/{id}", h.handleGetTask)
	mux.Handle("POST /api/v1/tasks", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleCreateTask)))
	mux.Handle("POST /api/v1/tasks/quick", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleQuickCreateTask)))
	mux.Handle("POST /api/v1/tasks/{id}/assign", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleAssignTask)))
	mux.Handle("PATCH /api/v1/tasks/{id}/status", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleUpdateTaskStatus)))
	mux.Handle("PATCH /api/v1/tasks/{id}", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleUpdateTask)))
	mux.Handle("POST /api/v1/tasks/{id}/review", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleSubmitForReview)))
	mux.Handle("POST /api/v1/tasks/{id}/review/approve", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleApproveReview)))
	mux.Handle("POST /api/v1/tasks/{id}/review/reject", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleRejectReview)))

	// Activity feed
	mux.HandleFunc("GET /api/v1/activities", h.handleListActivities)

	// Notifications
	mux.HandleFunc("GET /api/v1/notifications", h.handleListNotifications)
	mux.Handle("POST /api/v1/notifications", h.actorMiddleware.RequireActor(http.HandlerFunc(h.handleNotify)))
	mux.HandleFunc("POST /api/v1/notifications/delivered", h.handleMarkAllDelivered)
	mux.HandleFunc("POST /api/v1/notifications/{id}/delivered", h.handleMarkDelivered)

	// Agent roster
	mux.HandleFunc("GET /api/v1/agents", h.handleListAgents)
	mux.HandleFunc("POST /api/v1/agents", h.handleCreateAgent)
	mux.HandleFunc("PATCH /api/v1/agents/{id}/status", h.handleUpdateAgentStatus)
	mux.HandleFunc("POST /api/v1/agents/{id}/heartbeat", h.handleHeartbeat)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractID extracts and validates a UUID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractID(w http.ResponseWriter, r *http.Request, what string) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", what+" id is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", what+" id must be a valid UUID")
		return "", false
	}

	return id, true
}

// validUUIDs checks that every id in the slice parses as a UUID.
func validUUIDs(ids []string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}
