package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentdeck/agentdeck/internal/domain"
)

func TestAssignmentContent(t *testing.T) {
	assert.Equal(t, "you were assigned a task: fix the build", assignmentContent("fix the build"))
}

func TestRejectionContent(t *testing.T) {
	recipient := &domain.Agent{Name: "builder", MentionPatterns: []string{"@bld"}}

	reason := "tests are red"
	assert.Equal(t, "@bld tests are red", rejectionContent(recipient, &reason))

	// nil or empty reason falls back to the fixed phrase
	assert.Equal(t, "@bld "+defaultRejectionReason, rejectionContent(recipient, nil))
	empty := ""
	assert.Equal(t, "@bld "+defaultRejectionReason, rejectionContent(recipient, &empty))

	// no mention patterns falls back to @name
	plain := &domain.Agent{Name: "builder"}
	assert.Equal(t, "@builder "+defaultRejectionReason, rejectionContent(plain, nil))
}
