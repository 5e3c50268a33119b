package domain

// ActivityType represents the kind of audited action.
type ActivityType string

const (
	ActivityTaskCreated     ActivityType = "task_created"
	ActivityTaskAssigned    ActivityType = "task_assigned"
	ActivityTaskUpdated     ActivityType = "task_updated"
	ActivityStatusChanged   ActivityType = "status_changed"
	ActivityMessageSent     ActivityType = "message_sent"
	ActivityDocumentCreated ActivityType = "document_created"
	ActivityAgentHeartbeat  ActivityType = "agent_heartbeat"
)

// Activity is an append-only audit record. Records are never edited or
// deleted; every task mutation produces exactly one.
type Activity struct {
	ID        string
	Type      ActivityType
	AgentID   string
	TaskID    *string
	Message   string
	Metadata  map[string]any
	CreatedAt int64
}

// StatusChangeMetadata builds the metadata payload for a status_changed
// activity. Old and new are effective stages, never the blocked sentinel.
func StatusChangeMetadata(oldStatus, newStatus TaskStatus) map[string]any {
	return map[string]any{
		"oldStatus": string(oldStatus),
		"newStatus": string(newStatus),
	}
}
