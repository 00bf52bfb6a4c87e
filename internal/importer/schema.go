package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot is the top-level structure for a task/dependency import file.
// JSON and YAML are both accepted, selected by file extension.
type Snapshot struct {
	Tasks        []TaskImport       `json:"tasks" yaml:"tasks"`
	Dependencies []DependencyImport `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Constraints  *ConstraintsImport `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// TaskImport defines one task in the import file.
type TaskImport struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	EstimatedHours float64  `json:"estimated_hours" yaml:"estimated_hours"`
	Priority       string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Complexity     string   `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Status         string   `json:"status,omitempty" yaml:"status,omitempty"`
	RiskLevel      string   `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`
	DependsOn      []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// DependencyImport defines one dependency edge in the import file.
type DependencyImport struct {
	TaskID      string  `json:"task_id" yaml:"task_id"`
	DependsOnID string  `json:"depends_on_id" yaml:"depends_on_id"`
	Kind        string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Strength    float64 `json:"strength,omitempty" yaml:"strength,omitempty"`
	Reason      string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	RiskLevel   string  `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`
}

// ConstraintsImport defines optional team-capacity fields.
type ConstraintsImport struct {
	TeamSize              int     `json:"team_size" yaml:"team_size"`
	SprintLengthWeeks     int     `json:"sprint_length_weeks" yaml:"sprint_length_weeks"`
	HoursPerWeekPerPerson float64 `json:"hours_per_week_per_person" yaml:"hours_per_week_per_person"`
	StartDate             string  `json:"start_date" yaml:"start_date"`
	VelocityFactor        float64 `json:"velocity_factor,omitempty" yaml:"velocity_factor,omitempty"`
	BufferPct             float64 `json:"buffer_pct,omitempty" yaml:"buffer_pct,omitempty"`
}

// LoadSnapshot reads and parses an import file. The extension picks the
// decoder: .yaml/.yml use YAML, everything else JSON.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing YAML snapshot: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing JSON snapshot: %w", err)
		}
	}
	return &snap, nil
}
