package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"planet-system/internal/config"

	"github.com/gocarina/gocsv"
	"go.uber.org/multierr"
)

// OutputManager writes telemetry windows to <dir>/particles.csv.
// A nil *OutputManager discards everything, so callers need no guards.
type OutputManager struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewOutputManager creates dir and opens the CSV file.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "particles.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating particles.csv: %w", err)
	}
	return &OutputManager{dir: dir, file: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the effective configuration next to the CSV.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow appends one row; the first row also writes the header.
func (om *OutputManager) WriteWindow(ws WindowStats) error {
	if om == nil {
		return nil
	}
	records := []WindowStats{ws}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close flushes and closes the CSV file.
func (om *OutputManager) Close() error {
	if om == nil || om.file == nil {
		return nil
	}
	err := multierr.Append(om.file.Sync(), om.file.Close())
	om.file = nil
	return err
}
