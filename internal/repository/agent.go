package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
)

var agentColumns = []string{
	"id", "name", "role", "status", "current_task_id", "mention_patterns",
	"last_heartbeat", "created_at",
}

// AgentRepository handles database operations for the agent roster.
type AgentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository creates a new AgentRepository.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{pool: pool}
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var agent domain.Agent
	err := row.Scan(
		&agent.ID,
		&agent.Name,
		&agent.Role,
		&agent.Status,
		&agent.CurrentTaskID,
		&agent.MentionPatterns,
		&agent.LastHeartbeat,
		&agent.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("scan agent: %w", err)
	}
	return &agent, nil
}

// Create inserts a new agent. Names are unique across the roster.
func (r *AgentRepository) Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
	if agent.MentionPatterns == nil {
		agent.MentionPatterns = []string{}
	}

	query, args, err := psql.
		Insert("agents").
		Columns("name", "role", "status", "mention_patterns", "created_at").
		Values(agent.Name, agent.Role, agent.Status, agent.MentionPatterns, agent.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for agent: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&agent.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAgentNameTaken
		}
		return nil, fmt.Errorf("create agent: %w", err)
	}

	return agent, nil
}

// GetByID retrieves an agent by ID.
func (r *AgentRepository) GetByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	query, args, err := psql.
		Select(agentColumns...).
		From("agents").
		Where(sq.Eq{"id": agentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for agent: %w", err)
	}

	return scanAgent(r.pool.QueryRow(ctx, query, args...))
}

// GetByName retrieves an agent by display name.
func (r *AgentRepository) GetByName(ctx context.Context, name string) (*domain.Agent, error) {
	query, args, err := psql.
		Select(agentColumns...).
		From("agents").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByName query for agent: %w", err)
	}

	return scanAgent(r.pool.QueryRow(ctx, query, args...))
}

// List retrieves the full roster ordered by name.
func (r *AgentRepository) List(ctx context.Context) ([]*domain.Agent, error) {
	query, args, err := psql.
		Select(agentColumns...).
		From("agents").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for agents: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var agents []*domain.Agent
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return agents, nil
}

// UpdateStatus sets an agent's availability and current task.
func (r *AgentRepository) UpdateStatus(
	ctx context.Context,
	agentID string,
	status domain.AgentStatus,
	currentTaskID *string,
) error {
	query, args, err := psql.
		Update("agents").
		Set("status", status).
		Set("current_task_id", currentTaskID).
		Where(sq.Eq{"id": agentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build UpdateStatus query for agent %s: %w", agentID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update agent status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}

	return nil
}

// UpdateHeartbeat stamps the agent's last heartbeat within a transaction so
// the accompanying activity record commits with it.
func (r *AgentRepository) UpdateHeartbeat(ctx context.Context, tx pgx.Tx, agentID string, at int64) error {
	query, args, err := psql.
		Update("agents").
		Set("last_heartbeat", at).
		Where(sq.Eq{"id": agentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build UpdateHeartbeat query for agent %s: %w", agentID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update agent heartbeat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}

	return nil
}
