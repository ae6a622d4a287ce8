package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/snake/config"
)

// OutputManager writes session output files: rounds.csv and a config snapshot.
type OutputManager struct {
	dir        string
	roundsFile *os.File

	roundsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}

	return &OutputManager{dir: dir, roundsFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRound appends a round record to rounds.csv.
func (om *OutputManager) WriteRound(r Round) error {
	if om == nil {
		return nil
	}

	records := []Round{r}

	if !om.roundsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
		om.roundsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
	}

	return nil
}

// Close closes all open files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.roundsFile != nil {
		return om.roundsFile.Close()
	}
	return nil
}
