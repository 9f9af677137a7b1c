package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	activities, err := Default()
	require.NoError(t, err)
	require.Len(t, activities, 9)

	assert.Equal(t, "Chess Club", activities[0].Name)
	assert.Equal(t, 12, activities[0].MaxParticipants)
	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		activities[0].Participants)

	names := make(map[string]struct{}, len(activities))
	for _, act := range activities {
		names[act.Name] = struct{}{}
	}
	assert.Contains(t, names, "Programming Class")
	assert.Contains(t, names, "Gym Class")
	assert.Contains(t, names, "STEM Research Lab")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.yaml")
	data := `activities:
  - name: Robotics Club
    description: Build and program robots
    schedule: Wednesdays, 3:30 PM - 5:00 PM
    max_participants: 10
    participants:
      - ada@mergington.edu
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	activities, err := Load(path)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Robotics Club", activities[0].Name)
	assert.Equal(t, []string{"ada@mergington.edu"}, activities[0].Participants)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "malformed yaml",
			data: "activities: [",
		},
		{
			name: "no activities",
			data: "activities: []",
		},
		{
			name: "empty name",
			data: `activities:
  - name: ""
    max_participants: 5
`,
		},
		{
			name: "duplicate name",
			data: `activities:
  - name: Chess Club
    max_participants: 5
  - name: Chess Club
    max_participants: 5
`,
		},
		{
			name: "zero capacity",
			data: `activities:
  - name: Chess Club
    max_participants: 0
`,
		},
		{
			name: "seeded over capacity",
			data: `activities:
  - name: Chess Club
    max_participants: 1
    participants:
      - a@mergington.edu
      - b@mergington.edu
`,
		},
		{
			name: "duplicate participant",
			data: `activities:
  - name: Chess Club
    max_participants: 5
    participants:
      - a@mergington.edu
      - a@mergington.edu
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
