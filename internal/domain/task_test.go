package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	task := Task{Status: TaskStatusInProgress}
	assert.Equal(t, TaskStatusInProgress, task.EffectiveStatus())

	original := TaskStatusReview
	task = Task{Status: TaskStatusReview, IsBlocked: true, OriginalStatus: &original}
	assert.Equal(t, TaskStatusReview, task.EffectiveStatus())

	// overlay without a captured stage falls back to the stored one
	task = Task{Status: TaskStatusAssigned, IsBlocked: true}
	assert.Equal(t, TaskStatusAssigned, task.EffectiveStatus())
}

func TestTaskStatusIsStage(t *testing.T) {
	assert.True(t, TaskStatusInbox.IsStage())
	assert.True(t, TaskStatusDone.IsStage())

	// blocked is a valid transition target but never a stored stage
	assert.True(t, TaskStatusBlocked.IsValid())
	assert.False(t, TaskStatusBlocked.IsStage())

	assert.False(t, TaskStatus("cancelled").IsValid())
}

func TestTaskPriorityIsValid(t *testing.T) {
	for _, p := range []TaskPriority{TaskPriorityP0, TaskPriorityP1, TaskPriorityP2, TaskPriorityP3} {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, TaskPriority("urgent").IsValid())
	assert.False(t, TaskPriority("").IsValid())
}

func TestPrimaryRecipient(t *testing.T) {
	creator := "creator-id"

	task := Task{AssigneeIDs: []string{"first", "second"}, CreatedBy: &creator}
	got, ok := task.PrimaryRecipient()
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	task = Task{CreatedBy: &creator}
	got, ok = task.PrimaryRecipient()
	assert.True(t, ok)
	assert.Equal(t, creator, got)

	task = Task{}
	_, ok = task.PrimaryRecipient()
	assert.False(t, ok)
}

func TestIsAssignedTo(t *testing.T) {
	task := Task{AssigneeIDs: []string{"a", "b"}}
	assert.True(t, task.IsAssignedTo("b"))
	assert.False(t, task.IsAssignedTo("c"))
}

func TestStatusChangeMetadata(t *testing.T) {
	meta := StatusChangeMetadata(TaskStatusInbox, TaskStatusAssigned)
	assert.Equal(t, "inbox", meta["oldStatus"])
	assert.Equal(t, "assigned", meta["newStatus"])
}

func TestTruncateContent(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, TruncateContent(short))

	long := strings.Repeat("x", NotificationContentLimit+50)
	got := TruncateContent(long)
	assert.Len(t, got, NotificationContentLimit)

	// truncation counts runes, not bytes
	wide := strings.Repeat("ы", NotificationContentLimit+1)
	got = TruncateContent(wide)
	assert.Equal(t, NotificationContentLimit, len([]rune(got)))
}

func TestAgentMention(t *testing.T) {
	agent := Agent{Name: "builder", MentionPatterns: []string{"@bld", "@builder"}}
	assert.Equal(t, "@bld", agent.Mention())

	agent = Agent{Name: "builder"}
	assert.Equal(t, "@builder", agent.Mention())
}
