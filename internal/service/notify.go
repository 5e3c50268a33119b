package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/metrics"
	"github.com/agentdeck/agentdeck/internal/repository"
)

// defaultRejectionReason is used when a reviewer rejects without a comment.
const defaultRejectionReason = "review rejected, please revise and resubmit"

// assignmentContent builds the templated notification text for an assignment.
// Templated content is short by construction and not truncated.
func assignmentContent(title string) string {
	return fmt.Sprintf("you were assigned a task: %s", title)
}

// rejectionContent builds the rejection notification text: the recipient's
// mention handle followed by the reviewer's reason.
func rejectionContent(recipient *domain.Agent, reason *string) string {
	text := defaultRejectionReason
	if reason != nil && *reason != "" {
		text = *reason
	}
	return fmt.Sprintf("%s %s", recipient.Mention(), text)
}

// NotificationService exposes the raw Notify primitive used by external
// collaborators (the comment/message component routes mentions through it).
type NotificationService struct {
	pool             *pgxpool.Pool
	notificationRepo *repository.NotificationRepository
	agentRepo        *repository.AgentRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	pool *pgxpool.Pool,
	notificationRepo *repository.NotificationRepository,
	agentRepo *repository.AgentRepository,
) *NotificationService {
	return &NotificationService{
		pool:             pool,
		notificationRepo: notificationRepo,
		agentRepo:        agentRepo,
	}
}

// NotifyParams holds the inputs for Notify.
type NotifyParams struct {
	RecipientID string
	SenderID    string
	TaskID      *string
	MessageID   *string
	Content     string
}

// Notify inserts one undelivered notification. Content arrives as free-form
// text here and is truncated to the bounded limit at insert time.
func (s *NotificationService) Notify(ctx context.Context, p NotifyParams) (*domain.Notification, error) {
	if _, err := s.agentRepo.GetByID(ctx, p.RecipientID); err != nil {
		return nil, err
	}
	if _, err := s.agentRepo.GetByID(ctx, p.SenderID); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		RecipientID: p.RecipientID,
		SenderID:    p.SenderID,
		TaskID:      p.TaskID,
		MessageID:   p.MessageID,
		Content:     domain.TruncateContent(p.Content),
		CreatedAt:   domain.NowMillis(),
	}

	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		return s.notificationRepo.Create(ctx, tx, n)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordNotifications(1)

	return n, nil
}
