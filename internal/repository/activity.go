package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
)

var activityColumns = []string{
	"id", "type", "agent_id", "task_id", "message", "metadata", "created_at",
}

// ActivityRepository handles database operations for the append-only activity log.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create appends an activity record within a transaction. Records are
// immutable once written; there is no update or delete path.
func (r *ActivityRepository) Create(ctx context.Context, tx pgx.Tx, activity *domain.Activity) error {
	// nil map must land as SQL NULL, not the JSON literal "null"
	var metadata any
	if activity.Metadata != nil {
		metadata = activity.Metadata
	}

	query, args, err := psql.
		Insert("activities").
		Columns("type", "agent_id", "task_id", "message", "metadata", "created_at").
		Values(activity.Type, activity.AgentID, activity.TaskID, activity.Message, metadata, activity.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&activity.ID); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}

	return nil
}

func scanActivities(rows pgx.Rows) ([]*domain.Activity, error) {
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.AgentID,
			&activity.TaskID,
			&activity.Message,
			&activity.Metadata,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return activities, nil
}

// Recent retrieves the most recent activities in reverse chronological order.
// since, when non-nil, is an epoch-millisecond lower bound.
func (r *ActivityRepository) Recent(ctx context.Context, limit int, since *int64) ([]*domain.Activity, error) {
	qb := psql.
		Select(activityColumns...).
		From("activities").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if since != nil {
		qb = qb.Where(sq.GtOrEq{"created_at": *since})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Recent query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	return scanActivities(rows)
}

// ByAgent retrieves the most recent activities of one actor.
func (r *ActivityRepository) ByAgent(ctx context.Context, agentID string, limit int) ([]*domain.Activity, error) {
	query, args, err := psql.
		Select(activityColumns...).
		From("activities").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ByAgent query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities by agent: %w", err)
	}

	return scanActivities(rows)
}

// ByTask retrieves the full audit trail of one task in chronological order.
func (r *ActivityRepository) ByTask(ctx context.Context, taskID string) ([]*domain.Activity, error) {
	query, args, err := psql.
		Select(activityColumns...).
		From("activities").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ByTask query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities by task: %w", err)
	}

	return scanActivities(rows)
}
