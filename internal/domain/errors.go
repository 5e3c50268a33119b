package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrMissingReviewer = errors.New("reviewer id is required")
	ErrEmptyTitle      = errors.New("title is required")

	// Agent errors
	ErrAgentNotFound      = errors.New("agent not found")
	ErrEmptyName          = errors.New("name is required")
	ErrAgentNameTaken     = errors.New("agent name already taken")
	ErrInvalidAgentStatus = errors.New("invalid agent status")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
)
