package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/repository"
)

// AgentService manages the agent roster.
type AgentService struct {
	pool         *pgxpool.Pool
	agentRepo    *repository.AgentRepository
	activityRepo *repository.ActivityRepository
}

// NewAgentService creates a new AgentService.
func NewAgentService(
	pool *pgxpool.Pool,
	agentRepo *repository.AgentRepository,
	activityRepo *repository.ActivityRepository,
) *AgentService {
	return &AgentService{
		pool:         pool,
		agentRepo:    agentRepo,
		activityRepo: activityRepo,
	}
}

// CreateAgent provisions a new roster member, idle by default.
func (s *AgentService) CreateAgent(
	ctx context.Context,
	name string,
	role string,
	mentionPatterns []string,
) (*domain.Agent, error) {
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	agent := &domain.Agent{
		Name:            name,
		Role:            role,
		Status:          domain.AgentStatusIdle,
		MentionPatterns: mentionPatterns,
		CreatedAt:       domain.NowMillis(),
	}

	if _, err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}

	slog.Info("agent created", "agent_id", agent.ID, "name", agent.Name)

	return agent, nil
}

// UpdateAgentStatus sets an agent's availability and, optionally, the task it
// is working on.
func (s *AgentService) UpdateAgentStatus(
	ctx context.Context,
	agentID string,
	status domain.AgentStatus,
	currentTaskID *string,
) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAgentStatus, status)
	}

	if err := s.agentRepo.UpdateStatus(ctx, agentID, status, currentTaskID); err != nil {
		return err
	}

	slog.Info("agent status updated", "agent_id", agentID, "status", status)

	return nil
}

// Heartbeat stamps the agent's liveness and appends the matching activity in
// one transaction. This is the only activity append not driven by a task
// mutation.
func (s *AgentService) Heartbeat(ctx context.Context, agentID string) error {
	now := domain.NowMillis()

	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.agentRepo.UpdateHeartbeat(ctx, tx, agentID, now); err != nil {
			return err
		}
		return s.activityRepo.Create(ctx, tx, &domain.Activity{
			Type:      domain.ActivityAgentHeartbeat,
			AgentID:   agentID,
			Message:   "heartbeat",
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	slog.Debug("agent heartbeat", "agent_id", agentID)

	return nil
}

// RosterMember describes one agent in a seed roster.
type RosterMember struct {
	Name            string
	Role            string
	MentionPatterns []string
}

// SeedResult reports what happened to one roster member during seeding.
type SeedResult struct {
	Name    string
	AgentID string
	Created bool
}

// SeedTeam provisions a roster idempotently: members that already exist by
// name are left untouched.
func (s *AgentService) SeedTeam(ctx context.Context, roster []RosterMember) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(roster))

	for _, member := range roster {
		existing, err := s.agentRepo.GetByName(ctx, member.Name)
		if err == nil {
			results = append(results, SeedResult{Name: member.Name, AgentID: existing.ID})
			continue
		}
		if !errors.Is(err, domain.ErrAgentNotFound) {
			return nil, err
		}

		agent, err := s.CreateAgent(ctx, member.Name, member.Role, member.MentionPatterns)
		if err != nil {
			return nil, fmt.Errorf("seed agent %s: %w", member.Name, err)
		}
		results = append(results, SeedResult{Name: member.Name, AgentID: agent.ID, Created: true})
	}

	return results, nil
}
