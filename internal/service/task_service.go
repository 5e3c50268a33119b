package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/metrics"
	"github.com/agentdeck/agentdeck/internal/repository"
)

// TaskService owns the task lifecycle state machine. Every mutating operation
// runs as one transaction: the task row is locked, mutated, and committed
// together with exactly one activity record and zero or more notifications.
type TaskService struct {
	pool             *pgxpool.Pool
	taskRepo         *repository.TaskRepository
	activityRepo     *repository.ActivityRepository
	notificationRepo *repository.NotificationRepository
	agentRepo        *repository.AgentRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	activityRepo *repository.ActivityRepository,
	notificationRepo *repository.NotificationRepository,
	agentRepo *repository.AgentRepository,
) *TaskService {
	return &TaskService{
		pool:             pool,
		taskRepo:         taskRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
		agentRepo:        agentRepo,
	}
}

// inTx runs fn inside a transaction, committing on success.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// checkAgents verifies that every referenced agent id resolves in the roster.
func (s *TaskService) checkAgents(ctx context.Context, agentIDs ...string) error {
	for _, id := range agentIDs {
		if _, err := s.agentRepo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// CreateTaskParams holds the inputs for CreateTask.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    domain.TaskPriority
	AssigneeIDs []string
	CreatedBy   *string
	DueDate     *int64
}

// CreateTask creates a task, assigned when assignees are given, otherwise in
// the inbox. Emits a task_created activity when a creator is known. Assignment
// notifications are AssignTask's job, not CreateTask's.
func (s *TaskService) CreateTask(ctx context.Context, p CreateTaskParams) (*domain.Task, error) {
	if p.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, p.Priority)
	}
	if err := s.checkAgents(ctx, p.AssigneeIDs...); err != nil {
		return nil, err
	}
	if p.CreatedBy != nil {
		if err := s.checkAgents(ctx, *p.CreatedBy); err != nil {
			return nil, err
		}
	}

	now := domain.NowMillis()
	status := domain.TaskStatusInbox
	if len(p.AssigneeIDs) > 0 {
		status = domain.TaskStatusAssigned
	}

	task := &domain.Task{
		Title:          p.Title,
		Description:    p.Description,
		Status:         status,
		Priority:       p.Priority,
		AssigneeIDs:    p.AssigneeIDs,
		CreatedBy:      p.CreatedBy,
		DueDate:        p.DueDate,
		StateChangedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := s.taskRepo.Create(ctx, tx, task); err != nil {
			return err
		}
		if p.CreatedBy == nil {
			return nil
		}
		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityTaskCreated,
			AgentID:   *p.CreatedBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("created task: %s", task.Title),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("create")
	slog.Info("task created", "task_id", task.ID, "status", task.Status, "priority", task.Priority)

	return task, nil
}

// QuickCreateTask creates a task from just a title and priority, with at most
// one assignee. The assignee, if any, is notified immediately.
func (s *TaskService) QuickCreateTask(
	ctx context.Context,
	title string,
	priority domain.TaskPriority,
	assigneeID *string,
	createdBy string,
) (*domain.Task, error) {
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}
	if err := s.checkAgents(ctx, createdBy); err != nil {
		return nil, err
	}

	var assigneeIDs []string
	if assigneeID != nil {
		if err := s.checkAgents(ctx, *assigneeID); err != nil {
			return nil, err
		}
		assigneeIDs = []string{*assigneeID}
	}

	now := domain.NowMillis()
	status := domain.TaskStatusInbox
	if len(assigneeIDs) > 0 {
		status = domain.TaskStatusAssigned
	}

	task := &domain.Task{
		Title:          title,
		Status:         status,
		Priority:       priority,
		AssigneeIDs:    assigneeIDs,
		CreatedBy:      &createdBy,
		StateChangedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := s.taskRepo.Create(ctx, tx, task); err != nil {
			return err
		}
		err := s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityTaskCreated,
			AgentID:   createdBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("created task: %s", task.Title),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		if assigneeID == nil {
			return nil
		}
		return s.notificationRepo.Create(ctx, tx, &domain.Notification{
			RecipientID: *assigneeID,
			SenderID:    createdBy,
			TaskID:      &task.ID,
			Content:     assignmentContent(task.Title),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if assigneeID != nil {
		metrics.RecordNotifications(1)
	}
	metrics.RecordTaskOp("quick_create")
	slog.Info("task quick-created", "task_id", task.ID, "priority", task.Priority)

	return task, nil
}

// AssignTask replaces the assignee set, forces the task into the assigned
// stage and lifts the block overlay. Every new assignee gets a notification.
func (s *TaskService) AssignTask(
	ctx context.Context,
	taskID string,
	assigneeIDs []string,
	assignedBy string,
) (*domain.Task, error) {
	if err := s.checkAgents(ctx, assignedBy); err != nil {
		return nil, err
	}
	if err := s.checkAgents(ctx, assigneeIDs...); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		oldStatus := task.EffectiveStatus()

		task.AssigneeIDs = assigneeIDs
		task.Status = domain.TaskStatusAssigned
		task.IsBlocked = false
		task.OriginalStatus = nil
		task.StateChangedAt = now
		task.UpdatedAt = now

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		err = s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityTaskAssigned,
			AgentID:   assignedBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("assigned task: %s", task.Title),
			Metadata:  domain.StatusChangeMetadata(oldStatus, domain.TaskStatusAssigned),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		for _, assigneeID := range assigneeIDs {
			err := s.notificationRepo.Create(ctx, tx, &domain.Notification{
				RecipientID: assigneeID,
				SenderID:    assignedBy,
				TaskID:      &task.ID,
				Content:     assignmentContent(task.Title),
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("assign")
	metrics.RecordNotifications(len(assigneeIDs))
	slog.Info("task assigned", "task_id", task.ID, "assignees", len(assigneeIDs))

	return task, nil
}

// UpdateTaskStatus is the general-purpose transition entry point.
//
// A "blocked" target sets the overlay without touching the stored stage,
// capturing the pre-block stage exactly once; any other target clears the
// overlay and, when landing on in_progress, wipes review metadata. The audit
// record always reports effective stages, never the blocked sentinel.
func (s *TaskService) UpdateTaskStatus(
	ctx context.Context,
	taskID string,
	target domain.TaskStatus,
	updatedBy string,
) (*domain.Task, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, target)
	}
	if err := s.checkAgents(ctx, updatedBy); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		oldStatus := task.EffectiveStatus()
		newStatus := oldStatus

		if target == domain.TaskStatusBlocked {
			// re-blocking must not overwrite the captured stage
			if !task.IsBlocked {
				captured := oldStatus
				task.OriginalStatus = &captured
			}
			task.IsBlocked = true
		} else {
			task.Status = target
			task.IsBlocked = false
			task.OriginalStatus = nil
			if target == domain.TaskStatusInProgress {
				task.ReviewerID = nil
				task.ReviewComment = nil
				task.ReviewedAt = nil
			}
			newStatus = target
		}

		task.StateChangedAt = now
		task.UpdatedAt = now

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityStatusChanged,
			AgentID:   updatedBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("task status: %s -> %s", oldStatus, newStatus),
			Metadata:  domain.StatusChangeMetadata(oldStatus, newStatus),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("update_status")
	slog.Info("task status updated",
		"task_id", task.ID,
		"target", target,
		"blocked", task.IsBlocked,
	)

	return task, nil
}

// SubmitForReview moves a task into the review stage, recording the submitter's
// comment and optionally a requested reviewer. Any prior review stamp is cleared.
func (s *TaskService) SubmitForReview(
	ctx context.Context,
	taskID string,
	updatedBy string,
	reviewComment *string,
	reviewerID *string,
) (*domain.Task, error) {
	if err := s.checkAgents(ctx, updatedBy); err != nil {
		return nil, err
	}
	if reviewerID != nil {
		if err := s.checkAgents(ctx, *reviewerID); err != nil {
			return nil, err
		}
	}

	var task *domain.Task
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		oldStatus := task.EffectiveStatus()

		task.Status = domain.TaskStatusReview
		task.ReviewComment = reviewComment
		if reviewerID != nil {
			task.ReviewerID = reviewerID
		}
		task.ReviewedAt = nil
		task.IsBlocked = false
		task.OriginalStatus = nil
		task.StateChangedAt = now
		task.UpdatedAt = now

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityStatusChanged,
			AgentID:   updatedBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("submitted for review: %s", task.Title),
			Metadata:  domain.StatusChangeMetadata(oldStatus, domain.TaskStatusReview),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("submit_review")
	slog.Info("task submitted for review", "task_id", task.ID)

	return task, nil
}

// ApproveReview completes a task out of review. The reviewer is stamped; the
// review comment is overwritten only when a new one is given.
func (s *TaskService) ApproveReview(
	ctx context.Context,
	taskID string,
	reviewerID string,
	reviewComment *string,
) (*domain.Task, error) {
	if reviewerID == "" {
		return nil, domain.ErrMissingReviewer
	}
	if err := s.checkAgents(ctx, reviewerID); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		oldStatus := task.EffectiveStatus()

		task.Status = domain.TaskStatusDone
		task.ReviewerID = &reviewerID
		if reviewComment != nil {
			task.ReviewComment = reviewComment
		}
		task.ReviewedAt = &now
		task.IsBlocked = false
		task.OriginalStatus = nil
		task.StateChangedAt = now
		task.UpdatedAt = now

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityStatusChanged,
			AgentID:   reviewerID,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("review approved: %s", task.Title),
			Metadata:  domain.StatusChangeMetadata(oldStatus, domain.TaskStatusDone),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("approve_review")
	slog.Info("task review approved", "task_id", task.ID, "reviewer_id", reviewerID)

	return task, nil
}

// RejectReview sends a task back to in_progress, keeping the reviewer stamp
// and comment visible as the rejection note. This is the one in_progress path
// that preserves review metadata. The primary recipient (first assignee, else
// creator) is notified with the rejection reason.
func (s *TaskService) RejectReview(
	ctx context.Context,
	taskID string,
	reviewerID string,
	reviewComment *string,
) (*domain.Task, error) {
	if reviewerID == "" {
		return nil, domain.ErrMissingReviewer
	}
	if err := s.checkAgents(ctx, reviewerID); err != nil {
		return nil, err
	}

	var task *domain.Task
	notified := false
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		oldStatus := task.EffectiveStatus()

		task.Status = domain.TaskStatusInProgress
		task.ReviewerID = &reviewerID
		if reviewComment != nil {
			task.ReviewComment = reviewComment
		}
		task.ReviewedAt = &now
		task.IsBlocked = false
		task.OriginalStatus = nil
		task.StateChangedAt = now
		task.UpdatedAt = now

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		err = s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityStatusChanged,
			AgentID:   reviewerID,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("review rejected: %s", task.Title),
			Metadata:  domain.StatusChangeMetadata(oldStatus, domain.TaskStatusInProgress),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		recipientID, ok := task.PrimaryRecipient()
		if !ok {
			return nil
		}
		recipient, err := s.agentRepo.GetByID(ctx, recipientID)
		if err != nil {
			return err
		}

		notified = true
		return s.notificationRepo.Create(ctx, tx, &domain.Notification{
			RecipientID: recipientID,
			SenderID:    reviewerID,
			TaskID:      &task.ID,
			Content:     rejectionContent(recipient, reviewComment),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if notified {
		metrics.RecordNotifications(1)
	}
	metrics.RecordTaskOp("reject_review")
	slog.Info("task review rejected", "task_id", task.ID, "reviewer_id", reviewerID)

	return task, nil
}

// UpdateTaskParams holds the partial patch for UpdateTask. Nil fields are left
// untouched.
type UpdateTaskParams struct {
	TaskID      string
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	DueDate     *int64
	UpdatedBy   string
}

// UpdateTask patches non-lifecycle fields. updated_at always moves;
// state_changed_at moves only when priority or due date actually changed,
// since those feed urgency display.
func (s *TaskService) UpdateTask(ctx context.Context, p UpdateTaskParams) (*domain.Task, error) {
	if p.Priority != nil && !p.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, *p.Priority)
	}
	if err := s.checkAgents(ctx, p.UpdatedBy); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		task, err = s.taskRepo.GetByIDForUpdate(ctx, tx, p.TaskID)
		if err != nil {
			return err
		}

		now := domain.NowMillis()
		urgencyChanged := false

		if p.Title != nil {
			task.Title = *p.Title
		}
		if p.Description != nil {
			task.Description = *p.Description
		}
		if p.Priority != nil && *p.Priority != task.Priority {
			task.Priority = *p.Priority
			urgencyChanged = true
		}
		if p.DueDate != nil && (task.DueDate == nil || *task.DueDate != *p.DueDate) {
			task.DueDate = p.DueDate
			urgencyChanged = true
		}

		task.UpdatedAt = now
		if urgencyChanged {
			task.StateChangedAt = now
		}

		if err := s.taskRepo.Save(ctx, tx, task); err != nil {
			return err
		}

		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityTaskUpdated,
			AgentID:   p.UpdatedBy,
			TaskID:    &task.ID,
			Message:   fmt.Sprintf("updated task: %s", task.Title),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTaskOp("update")
	slog.Info("task updated", "task_id", task.ID)

	return task, nil
}
