package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
)

var notificationColumns = []string{
	"id", "recipient_id", "sender_id", "task_id", "message_id", "content",
	"delivered", "created_at",
}

// NotificationRepository handles database operations for notifications.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create inserts a notification within a transaction, undelivered.
func (r *NotificationRepository) Create(ctx context.Context, tx pgx.Tx, n *domain.Notification) error {
	query, args, err := psql.
		Insert("notifications").
		Columns("recipient_id", "sender_id", "task_id", "message_id", "content", "delivered", "created_at").
		Values(n.RecipientID, n.SenderID, n.TaskID, n.MessageID, n.Content, false, n.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&n.ID); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	n.Delivered = false

	return nil
}

func scanNotifications(rows pgx.Rows) ([]*domain.Notification, error) {
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.SenderID,
			&n.TaskID,
			&n.MessageID,
			&n.Content,
			&n.Delivered,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return notifications, nil
}

// Undelivered retrieves all pending notifications for an agent, oldest first.
func (r *NotificationRepository) Undelivered(ctx context.Context, agentID string) ([]*domain.Notification, error) {
	query, args, err := psql.
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": agentID, "delivered": false}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Undelivered query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query undelivered notifications: %w", err)
	}

	return scanNotifications(rows)
}

// ByAgent retrieves the most recent notifications for an agent.
func (r *NotificationRepository) ByAgent(ctx context.Context, agentID string, limit int) ([]*domain.Notification, error) {
	query, args, err := psql.
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": agentID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ByAgent query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications by agent: %w", err)
	}

	return scanNotifications(rows)
}

// MarkDelivered flips one notification to delivered.
func (r *NotificationRepository) MarkDelivered(ctx context.Context, notificationID string) error {
	query, args, err := psql.
		Update("notifications").
		Set("delivered", true).
		Where(sq.Eq{"id": notificationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build MarkDelivered query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark notification delivered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}

// MarkAllDelivered flips every pending notification of an agent to delivered
// and returns how many were flipped.
func (r *NotificationRepository) MarkAllDelivered(ctx context.Context, agentID string) (int, error) {
	query, args, err := psql.
		Update("notifications").
		Set("delivered", true).
		Where(sq.Eq{"recipient_id": agentID, "delivered": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build MarkAllDelivered query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications delivered: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
