package dto

// CreateTaskRequest represents the request body for POST /tasks.
// The acting agent from the X-Agent-ID header becomes the creator.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	AssigneeIDs []string `json:"assignee_ids,omitempty"`
	DueDate     *int64   `json:"due_date,omitempty"`
}

// QuickCreateTaskRequest represents the request body for POST /tasks/quick.
type QuickCreateTaskRequest struct {
	Title      string  `json:"title"`
	Priority   string  `json:"priority"`
	AssigneeID *string `json:"assignee_id,omitempty"`
}

// AssignTaskRequest represents the request body for POST /tasks/:id/assign.
// Order matters: the first assignee is the primary one.
type AssignTaskRequest struct {
	AssigneeIDs []string `json:"assignee_ids"`
}

// UpdateTaskStatusRequest represents the request body for PATCH /tasks/:id/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// SubmitForReviewRequest represents the request body for POST /tasks/:id/review.
type SubmitForReviewRequest struct {
	ReviewComment *string `json:"review_comment,omitempty"`
	ReviewerID    *string `json:"reviewer_id,omitempty"`
}

// ReviewDecisionRequest represents the request body for approve/reject.
// The acting agent is the reviewer.
type ReviewDecisionRequest struct {
	ReviewComment *string `json:"review_comment,omitempty"`
}

// UpdateTaskRequest represents the partial patch body for PATCH /tasks/:id.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
}

// NotifyRequest represents the request body for POST /notifications.
// The acting agent is the sender.
type NotifyRequest struct {
	RecipientID string  `json:"recipient_id"`
	TaskID      *string `json:"task_id,omitempty"`
	MessageID   *string `json:"message_id,omitempty"`
	Content     string  `json:"content"`
}

// CreateAgentRequest represents the request body for POST /agents.
type CreateAgentRequest struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	MentionPatterns []string `json:"mention_patterns,omitempty"`
}

// UpdateAgentStatusRequest represents the request body for PATCH /agents/:id/status.
type UpdateAgentStatusRequest struct {
	Status        string  `json:"status"`
	CurrentTaskID *string `json:"current_task_id,omitempty"`
}
