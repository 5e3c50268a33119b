package handler

import (
	"encoding/json"
	"net/http"

	"github.com/agentdeck/agentdeck/internal/domain"
	"github.com/agentdeck/agentdeck/internal/handler/dto"
)

// handleListAgents lists the roster.
// @Summary List agents
// @Description Returns every registered agent, ordered by name.
// @Tags agents
// @Produce json
// @Success 200 {object} dto.AgentsResponse
// @Router /agents [get]
func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agents, err := h.agentRepo.List(ctx)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	out := make([]dto.AgentResponse, len(agents))
	for i, agent := range agents {
		out[i] = dto.ToAgentResponse(agent)
	}

	respondJSON(w, http.StatusOK, dto.AgentsResponse{Agents: out})
}

// handleCreateAgent registers a new agent.
// @Summary Register an agent
// @Description Registers a new roster member, idle by default. Names are unique.
// @Tags agents
// @Accept json
// @Produce json
// @Param request body dto.CreateAgentRequest true "Agent registration request"
// @Success 201 {object} dto.AgentResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /agents [post]
func (h *Handler) handleCreateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	agent, err := h.agentService.CreateAgent(ctx, req.Name, req.Role, req.MentionPatterns)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToAgentResponse(agent))
}

// handleUpdateAgentStatus sets an agent's availability.
// @Summary Update agent status
// @Description Sets an agent's availability and, optionally, the task it is working on.
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body dto.UpdateAgentStatusRequest true "Status update request"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /agents/{id}/status [patch]
func (h *Handler) handleUpdateAgentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID, ok := extractID(w, r, "agent")
	if !ok {
		return
	}

	var req dto.UpdateAgentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if req.CurrentTaskID != nil && !validUUIDs([]string{*req.CurrentTaskID}) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "current_task_id must be a valid UUID")
		return
	}

	err := h.agentService.UpdateAgentStatus(ctx, agentID, domain.AgentStatus(req.Status), req.CurrentTaskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHeartbeat stamps an agent's liveness.
// @Summary Record an agent heartbeat
// @Description Updates the agent's last-heartbeat timestamp and appends a heartbeat activity.
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /agents/{id}/heartbeat [post]
func (h *Handler) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID, ok := extractID(w, r, "agent")
	if !ok {
		return
	}

	if err := h.agentService.Heartbeat(ctx, agentID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
