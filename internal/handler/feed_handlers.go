package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agentdeck/agentdeck/internal/handler/dto"
	"github.com/agentdeck/agentdeck/internal/middleware"
	"github.com/agentdeck/agentdeck/internal/service"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// handleListActivities returns the audit feed.
// @Summary List activities
// @Description Returns recent activities newest first, optionally filtered by agent or by a millisecond timestamp lower bound.
// @Tags activities
// @Produce json
// @Param limit query int false "Max records to return (default 50, max 500)"
// @Param agent query string false "Filter by acting agent ID"
// @Param since query int false "Only activities at or after this epoch-millisecond timestamp"
// @Success 200 {object} dto.ActivitiesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /activities [get]
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	limit := defaultActivityLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxActivityLimit)
	}

	var since *int64
	if raw := query.Get("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "since must be an epoch-millisecond integer")
			return
		}
		since = &parsed
	}

	agentFilter := query.Get("agent")
	if agentFilter != "" && !validUUIDs([]string{agentFilter}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "agent must be a valid UUID")
		return
	}

	activities, err := func() ([]dto.ActivityResponse, error) {
		if agentFilter != "" {
			records, err := h.activityRepo.ByAgent(ctx, agentFilter, limit)
			if err != nil {
				return nil, err
			}
			out := make([]dto.ActivityResponse, len(records))
			for i, record := range records {
				out[i] = dto.ToActivityResponse(record)
			}
			return out, nil
		}
		records, err := h.activityRepo.Recent(ctx, limit, since)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ActivityResponse, len(records))
		for i, record := range records {
			out[i] = dto.ToActivityResponse(record)
		}
		return out, nil
	}()
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ActivitiesResponse{Activities: activities})
}

// handleListNotifications returns notifications for an agent.
// @Summary List notifications
// @Description Returns an agent's notifications. With undelivered=true only the unread ones are returned, oldest first; otherwise the most recent ones, newest first.
// @Tags notifications
// @Produce json
// @Param agent query string true "Recipient agent ID"
// @Param undelivered query bool false "Only undelivered notifications"
// @Success 200 {object} dto.NotificationsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /notifications [get]
func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	agentID := query.Get("agent")
	if agentID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "agent query parameter is required")
		return
	}
	if !validUUIDs([]string{agentID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "agent must be a valid UUID")
		return
	}

	notifications, err := func() ([]dto.NotificationResponse, error) {
		if query.Get("undelivered") == "true" {
			records, err := h.notificationRepo.Undelivered(ctx, agentID)
			if err != nil {
				return nil, err
			}
			out := make([]dto.NotificationResponse, len(records))
			for i, record := range records {
				out[i] = dto.ToNotificationResponse(record)
			}
			return out, nil
		}
		records, err := h.notificationRepo.ByAgent(ctx, agentID, defaultActivityLimit)
		if err != nil {
			return nil, err
		}
		out := make([]dto.NotificationResponse, len(records))
		for i, record := range records {
			out[i] = dto.ToNotificationResponse(record)
		}
		return out, nil
	}()
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.NotificationsResponse{Notifications: notifications})
}

// handleNotify sends a direct notification.
// @Summary Send a notification
// @Description Inserts one undelivered notification from the acting agent to the recipient. Free-form content is truncated to 200 characters.
// @Tags notifications
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID (the sender)"
// @Param request body dto.NotifyRequest true "Notification request"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications [post]
func (h *Handler) handleNotify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	var req dto.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if req.RecipientID == "" || !validUUIDs([]string{req.RecipientID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "recipient_id must be a valid UUID")
		return
	}
	if req.Content == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "content is required")
		return
	}
	if req.TaskID != nil && !validUUIDs([]string{*req.TaskID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task_id must be a valid UUID")
		return
	}

	notification, err := h.notificationService.Notify(ctx, service.NotifyParams{
		RecipientID: req.RecipientID,
		SenderID:    actor.ID,
		TaskID:      req.TaskID,
		MessageID:   req.MessageID,
		Content:     req.Content,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToNotificationResponse(notification))
}

// handleMarkDelivered acknowledges a single notification.
// @Summary Mark a notification delivered
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/delivered [post]
func (h *Handler) handleMarkDelivered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notificationID, ok := extractID(w, r, "notification")
	if !ok {
		return
	}

	if err := h.notificationRepo.MarkDelivered(ctx, notificationID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMarkAllDelivered acknowledges every undelivered notification of an agent.
// @Summary Mark all notifications delivered
// @Description Marks every undelivered notification of the agent as delivered and reports how many were affected.
// @Tags notifications
// @Produce json
// @Param agent query string true "Recipient agent ID"
// @Success 200 {object} dto.MarkAllDeliveredResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /notifications/delivered [post]
func (h *Handler) handleMarkAllDelivered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID := r.URL.Query().Get("agent")
	if agentID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "agent query parameter is required")
		return
	}
	if !validUUIDs([]string{agentID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "agent must be a valid UUID")
		return
	}

	marked, err := h.notificationRepo.MarkAllDelivered(ctx, agentID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.MarkAllDeliveredResponse{Marked: marked})
}
