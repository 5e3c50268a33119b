package domain

// AgentStatus represents the coarse availability of an agent.
type AgentStatus string

const (
	AgentStatusIdle    AgentStatus = "idle"
	AgentStatusActive  AgentStatus = "active"
	AgentStatusBlocked AgentStatus = "blocked"
)

// IsValid checks if the agent status is one of the allowed values.
func (s AgentStatus) IsValid() bool {
	switch s {
	case AgentStatusIdle, AgentStatusActive, AgentStatusBlocked:
		return true
	default:
		return false
	}
}

// Agent represents a named worker registered in the system.
type Agent struct {
	ID              string
	Name            string
	Role            string
	Status          AgentStatus
	CurrentTaskID   *string
	MentionPatterns []string
	LastHeartbeat   *int64
	CreatedAt       int64
}

// Mention returns the handle used to address the agent in notification text:
// the first configured mention pattern, falling back to "@<name>".
func (a *Agent) Mention() string {
	if len(a.MentionPatterns) > 0 {
		return a.MentionPatterns[0]
	}
	return "@" + a.Name
}
