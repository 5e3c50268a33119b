package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/handler/dto"
	"github.com/agentdeck/agentdeck/internal/middleware"
	"github.com/agentdeck/agentdeck/internal/service"
)

// handleCreateTask creates a new task.
// @Summary Create a new task
// @Description Creates a task in the inbox, or directly in the assigned stage when assignee_ids are given. The acting agent becomes the creator.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required")
		return
	}
	if !validUUIDs(req.AssigneeIDs) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "assignee_ids must be valid UUIDs")
		return
	}

	priority := domain.TaskPriorityP2
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
	}

	task, err := h.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		AssigneeIDs: req.AssigneeIDs,
		CreatedBy:   &actor.ID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleQuickCreateTask creates a task from a title alone.
// @Summary Quick-create a task
// @Description Creates a task from just a title, a priority and at most one assignee. The assignee, if any, is notified.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param request body dto.QuickCreateTaskRequest true "Quick creation request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/quick [post]
func (h *Handler) handleQuickCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	var req dto.QuickCreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required")
		return
	}
	if req.AssigneeID != nil && !validUUIDs([]string{*req.AssigneeID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "assignee_id must be a valid UUID")
		return
	}

	priority := domain.TaskPriorityP2
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
	}

	task, err := h.taskService.QuickCreateTask(ctx, req.Title, priority, req.AssigneeID, actor.ID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleListTasks lists tasks, optionally filtered.
// @Summary List tasks
// @Description Lists tasks newest first. The status filter matches the stored stage, so blocked tasks still appear under their underlying stage.
// @Tags tasks
// @Produce json
// @Param status query string false "Filter by stored status"
// @Param assignee query string false "Filter by assignee agent ID"
// @Success 200 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statusFilter := r.URL.Query().Get("status")
	assigneeFilter := r.URL.Query().Get("assignee")
	if statusFilter != "" && assigneeFilter != "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "status and assignee filters are mutually exclusive")
		return
	}

	var (
		tasks []*domain.Task
		err   error
	)
	switch {
	case statusFilter != "":
		status := domain.TaskStatus(statusFilter)
		if !status.IsValid() {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "unknown status filter")
			return
		}
		tasks, err = h.taskRepo.ListByStatus(ctx, status)
	case assigneeFilter != "":
		if !validUUIDs([]string{assigneeFilter}) {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "assignee must be a valid UUID")
			return
		}
		tasks, err = h.taskRepo.ListByAssignee(ctx, assigneeFilter)
	default:
		tasks, err = h.taskRepo.List(ctx)
	}
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleGetTask retrieves a task with its audit trail.
// @Summary Get task details
// @Description Get full task details including the task's activity history, oldest first.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	task, err := h.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	activities, err := h.activityRepo.ByTask(ctx, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	out := make([]dto.ActivityResponse, len(activities))
	for i, activity := range activities {
		out[i] = dto.ToActivityResponse(activity)
	}

	respondJSON(w, http.StatusOK, dto.TaskDetailResponse{
		Task:       dto.ToTaskResponse(task),
		Activities: out,
	})
}

// handleAssignTask replaces a task's assignee set.
// @Summary Assign a task
// @Description Replaces the assignee set, forces the task into the assigned stage and lifts any block. Every assignee is notified.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param id path string true "Task ID"
// @Param request body dto.AssignTaskRequest true "Assignment request"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id}/assign [post]
func (h *Handler) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if len(req.AssigneeIDs) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "assignee_ids must not be empty")
		return
	}
	if !validUUIDs(req.AssigneeIDs) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "assignee_ids must be valid UUIDs")
		return
	}

	task, err := h.taskService.AssignTask(ctx, taskID, req.AssigneeIDs, actor.ID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdateTaskStatus transitions a task's status.
// @Summary Update task status
// @Description Transitions a task. A "blocked" target overlays the current stage without losing it; any other target clears the overlay. Moving to in_progress clears review metadata.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "Status transition request"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/status [patch]
func (h *Handler) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(ctx, taskID, domain.TaskStatus(req.Status), actor.ID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdateTask patches non-lifecycle task fields.
// @Summary Update task fields
// @Description Partially updates title, description, priority or due date. Omitted fields are left untouched.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Partial update request"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		p := domain.TaskPriority(*req.Priority)
		priority = &p
	}

	task, err := h.taskService.UpdateTask(ctx, service.UpdateTaskParams{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		UpdatedBy:   actor.ID,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleSubmitForReview moves a task into review.
// @Summary Submit a task for review
// @Description Moves the task into the review stage with the submitter's comment and an optional requested reviewer.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID"
// @Param id path string true "Task ID"
// @Param request body dto.SubmitForReviewRequest true "Review submission request"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id}/review [post]
func (h *Handler) handleSubmitForReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	var req dto.SubmitForReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if req.ReviewerID != nil && !validUUIDs([]string{*req.ReviewerID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "reviewer_id must be a valid UUID")
		return
	}

	task, err := h.taskService.SubmitForReview(ctx, taskID, actor.ID, req.ReviewComment, req.ReviewerID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleApproveReview completes a task out of review.
// @Summary Approve a review
// @Description Marks the task done. The acting agent is recorded as the reviewer.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID (the reviewer)"
// @Param id path string true "Task ID"
// @Param request body dto.ReviewDecisionRequest false "Optional review comment"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id}/review/approve [post]
func (h *Handler) handleApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	// the comment body is optional on review decisions
	var req dto.ReviewDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	task, err := h.taskService.ApproveReview(ctx, taskID, actor.ID, req.ReviewComment)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleRejectReview sends a task back to in_progress.
// @Summary Reject a review
// @Description Sends the task back to in_progress. The reviewer stamp and comment stay on the task as the rejection note, and the primary assignee is notified.
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Agent-ID header string true "Acting agent ID (the reviewer)"
// @Param id path string true "Task ID"
// @Param request body dto.ReviewDecisionRequest false "Optional rejection reason"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id}/review/reject [post]
func (h *Handler) handleRejectReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "acting agent is required")
		return
	}

	taskID, ok := extractID(w, r, "task")
	if !ok {
		return
	}

	var req dto.ReviewDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	task, err := h.taskService.RejectReview(ctx, taskID, actor.ID, req.ReviewComment)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}
