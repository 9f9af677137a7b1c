// Package seed loads the activity table that populates the registry at
// startup. The dataset is configuration, not logic: it ships as YAML so
// deployments can swap it without touching the registry code.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
)

//go:embed activities.yaml
var defaultSeed []byte

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Default returns the built-in activity table.
func Default() ([]domain.Activity, error) {
	return parse(defaultSeed)
}

// Load reads an activity table from path.
func Load(path string) ([]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]domain.Activity, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("seed file defines no activities")
	}

	seen := make(map[string]struct{}, len(file.Activities))
	out := make([]domain.Activity, 0, len(file.Activities))
	for _, sa := range file.Activities {
		if sa.Name == "" {
			return nil, fmt.Errorf("seed activity with empty name")
		}
		if _, dup := seen[sa.Name]; dup {
			return nil, fmt.Errorf("duplicate seed activity %q", sa.Name)
		}
		seen[sa.Name] = struct{}{}

		if sa.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", sa.Name)
		}
		if len(sa.Participants) > sa.MaxParticipants {
			return nil, fmt.Errorf("activity %q: seeded with %d participants, capacity %d",
				sa.Name, len(sa.Participants), sa.MaxParticipants)
		}
		emails := make(map[string]struct{}, len(sa.Participants))
		for _, email := range sa.Participants {
			if _, dup := emails[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", sa.Name, email)
			}
			emails[email] = struct{}{}
		}

		out = append(out, domain.Activity{
			Name:            sa.Name,
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    append([]string(nil), sa.Participants...),
		})
	}
	return out, nil
}
