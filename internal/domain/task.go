package domain

import "time"

// TaskStatus represents a lifecycle stage of a task.
//
// "blocked" is a valid transition target but never a stored stage: blocking is
// an overlay tracked by Task.IsBlocked/Task.OriginalStatus so that the
// pre-block stage survives the round trip. See Task.EffectiveStatus.
type TaskStatus string

const (
	TaskStatusInbox      TaskStatus = "inbox"
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusInbox, TaskStatusAssigned, TaskStatusInProgress,
		TaskStatusReview, TaskStatusBlocked, TaskStatusDone:
		return true
	default:
		return false
	}
}

// IsStage reports whether the status is a storable lifecycle stage, as
// opposed to the blocked overlay sentinel.
func (s TaskStatus) IsStage() bool {
	return s.IsValid() && s != TaskStatusBlocked
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityP0 TaskPriority = "P0"
	TaskPriorityP1 TaskPriority = "P1"
	TaskPriorityP2 TaskPriority = "P2"
	TaskPriorityP3 TaskPriority = "P3"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityP0, TaskPriorityP1, TaskPriorityP2, TaskPriorityP3:
		return true
	default:
		return false
	}
}

// Task represents a unit of work routed between agents.
//
// AssigneeIDs is order-significant: the first entry is the primary assignee
// and receives rejection notifications.
type Task struct {
	ID             string
	Title          string
	Description    string
	Status         TaskStatus // stored stage, unaffected by blocking
	Priority       TaskPriority
	AssigneeIDs    []string
	CreatedBy      *string
	ReviewerID     *string
	ReviewComment  *string
	ReviewedAt     *int64
	DueDate        *int64
	IsBlocked      bool
	OriginalStatus *TaskStatus // stage to restore when unblocked
	StateChangedAt int64
	CreatedAt      int64
	UpdatedAt      int64
}

// EffectiveStatus returns the stage the task is really in: the captured
// pre-block stage while the block overlay is set, the stored stage otherwise.
func (t *Task) EffectiveStatus() TaskStatus {
	if t.IsBlocked && t.OriginalStatus != nil {
		return *t.OriginalStatus
	}
	return t.Status
}

// IsAssignedTo checks if the task is assigned to the given agent.
func (t *Task) IsAssignedTo(agentID string) bool {
	for _, id := range t.AssigneeIDs {
		if id == agentID {
			return true
		}
	}
	return false
}

// PrimaryRecipient returns the agent that should be told about a rejection:
// the first assignee, else the creator. ok is false when neither exists.
func (t *Task) PrimaryRecipient() (string, bool) {
	if len(t.AssigneeIDs) > 0 {
		return t.AssigneeIDs[0], true
	}
	if t.CreatedBy != nil {
		return *t.CreatedBy, true
	}
	return "", false
}

// NowMillis returns the current time as epoch milliseconds, the timestamp
// representation used across all persisted records.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
