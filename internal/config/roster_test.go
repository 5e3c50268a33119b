package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `
version: 1
agents:
  - name: coordinator
    role: lead
    mention_patterns: ["@coord"]
  - name: builder
    role: engineer
`)

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, 1, roster.Version)
	require.Len(t, roster.Agents, 2)
	assert.Equal(t, "coordinator", roster.Agents[0].Name)
	assert.Equal(t, []string{"@coord"}, roster.Agents[0].MentionPatterns)
	assert.Empty(t, roster.Agents[1].MentionPatterns)
}

func TestLoadRoster_Invalid(t *testing.T) {
	_, err := LoadRoster(writeRoster(t, "version: 1\nagents: []\n"))
	assert.Error(t, err)

	_, err = LoadRoster(writeRoster(t, `
version: 1
agents:
  - name: dup
  - name: dup
`))
	assert.Error(t, err)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
