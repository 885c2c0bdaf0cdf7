package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"setup-mirrors/internal/diagnostic"
	"setup-mirrors/internal/pairing"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Report is the YAML document written after a pass. A pairing pass fills
// Summary and a check pass fills Check.
type Report struct {
	Input       string                 `yaml:"input,omitempty"`
	Summary     *pairing.Summary       `yaml:"summary,omitempty"`
	Check       *pairing.CheckSummary  `yaml:"check,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics"`
}

// Marshal serializes a report to YAML.
func (r *Report) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteReport writes the report to path, creating its directory if needed.
func WriteReport(path string, r *Report) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
