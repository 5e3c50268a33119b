package dto

import "github.com/agentdeck/agentdeck/internal/domain"

// TaskResponse is the wire representation of a task. Both the stored status
// and the computed effective status are exposed; status filters match the
// stored value only. Timestamps are epoch milliseconds.
type TaskResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	Priority        string   `json:"priority"`
	AssigneeIDs     []string `json:"assignee_ids"`
	CreatedBy       *string  `json:"created_by"`
	ReviewerID      *string  `json:"reviewer_id"`
	ReviewComment   *string  `json:"review_comment"`
	ReviewedAt      *int64   `json:"reviewed_at"`
	DueDate         *int64   `json:"due_date"`
	IsBlocked       bool     `json:"is_blocked"`
	OriginalStatus  *string  `json:"original_status"`
	StateChangedAt  int64    `json:"state_changed_at"`
	CreatedAt       int64    `json:"created_at"`
	UpdatedAt       int64    `json:"updated_at"`
}

// TasksResponse represents the response for task list endpoints.
type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// TaskDetailResponse represents a task with its full audit trail.
type TaskDetailResponse struct {
	Task       TaskResponse       `json:"task"`
	Activities []ActivityResponse `json:"activities"`
}

// ActivityResponse is the wire representation of an audit record.
type ActivityResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	AgentID   string         `json:"agent_id"`
	TaskID    *string        `json:"task_id"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt int64          `json:"created_at"`
}

// ActivitiesResponse represents the response for GET /activities.
type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// NotificationResponse is the wire representation of a notification.
type NotificationResponse struct {
	ID          string  `json:"id"`
	RecipientID string  `json:"recipient_id"`
	SenderID    string  `json:"sender_id"`
	TaskID      *string `json:"task_id"`
	MessageID   *string `json:"message_id"`
	Content     string  `json:"content"`
	Delivered   bool    `json:"delivered"`
	CreatedAt   int64   `json:"created_at"`
}

// NotificationsResponse represents the response for GET /notifications.
type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// MarkAllDeliveredResponse reports how many notifications were acknowledged.
type MarkAllDeliveredResponse struct {
	Marked int `json:"marked"`
}

// AgentResponse is the wire representation of a roster member.
type AgentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Status          string   `json:"status"`
	CurrentTaskID   *string  `json:"current_task_id"`
	MentionPatterns []string `json:"mention_patterns"`
	LastHeartbeat   *int64   `json:"last_heartbeat"`
	CreatedAt       int64    `json:"created_at"`
}

// AgentsResponse represents the response for GET /agents.
type AgentsResponse struct {
	Agents []AgentResponse `json:"agents"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	var originalStatus *string
	if task.OriginalStatus != nil {
		s := string(*task.OriginalStatus)
		originalStatus = &s
	}

	return TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          string(task.Status),
		EffectiveStatus: string(task.EffectiveStatus()),
		Priority:        string(task.Priority),
		AssigneeIDs:     task.AssigneeIDs,
		CreatedBy:       task.CreatedBy,
		ReviewerID:      task.ReviewerID,
		ReviewComment:   task.ReviewComment,
		ReviewedAt:      task.ReviewedAt,
		DueDate:         task.DueDate,
		IsBlocked:       task.IsBlocked,
		OriginalStatus:  originalStatus,
		StateChangedAt:  task.StateChangedAt,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

// ToTasksResponse converts a task slice to the list envelope.
func ToTasksResponse(tasks []*domain.Task) TasksResponse {
	out := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskResponse(task)
	}
	return TasksResponse{Tasks: out, Total: len(out)}
}

// ToActivityResponse converts domain.Activity to ActivityResponse.
func ToActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        activity.ID,
		Type:      string(activity.Type),
		AgentID:   activity.AgentID,
		TaskID:    activity.TaskID,
		Message:   activity.Message,
		Metadata:  activity.Metadata,
		CreatedAt: activity.CreatedAt,
	}
}

// ToNotificationResponse converts domain.Notification to NotificationResponse.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		TaskID:      n.TaskID,
		MessageID:   n.MessageID,
		Content:     n.Content,
		Delivered:   n.Delivered,
		CreatedAt:   n.CreatedAt,
	}
}

// ToAgentResponse converts domain.Agent to AgentResponse.
func ToAgentResponse(agent *domain.Agent) AgentResponse {
	return AgentResponse{
		ID:              agent.ID,
		Name:            agent.Name,
		Role:            agent.Role,
		Status:          string(agent.Status),
		CurrentTaskID:   agent.CurrentTaskID,
		MentionPatterns: agent.MentionPatterns,
		LastHeartbeat:   agent.LastHeartbeat,
		CreatedAt:       agent.CreatedAt,
	}
}
