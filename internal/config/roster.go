package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster is the YAML description of a team of agents for seeding.
type Roster struct {
	Version int           `yaml:"version"`
	Agents  []RosterAgent `yaml:"agents"`
}

// RosterAgent describes a single agent to provision.
type RosterAgent struct {
	Name            string   `yaml:"name"`
	Role            string   `yaml:"role"`
	MentionPatterns []string `yaml:"mention_patterns,omitempty"`
}

// LoadRoster reads and parses a roster file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	if err := roster.validate(); err != nil {
		return nil, err
	}

	return &roster, nil
}

func (r *Roster) validate() error {
	if len(r.Agents) == 0 {
		return fmt.Errorf("roster has no agents")
	}
	seen := make(map[string]bool, len(r.Agents))
	for i, agent := range r.Agents {
		if agent.Name == "" {
			return fmt.Errorf("roster agent %d has no name", i)
		}
		if seen[agent.Name] {
			return fmt.Errorf("roster agent %q listed twice", agent.Name)
		}
		seen[agent.Name] = true
	}
	return nil
}
