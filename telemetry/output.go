package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ShoOtaku/HaiyaBox/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	queriesFile *os.File
	windowsFile *os.File

	// Track if headers have been written
	queriesHeaderWritten bool
	windowsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	queriesPath := filepath.Join(dir, "queries.csv")
	f, err := os.Create(queriesPath)
	if err != nil {
		return nil, fmt.Errorf("creating queries.csv: %w", err)
	}
	om.queriesFile = f

	windowsPath := filepath.Join(dir, "windows.csv")
	f, err = os.Create(windowsPath)
	if err != nil {
		om.queriesFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteQuery writes a query record to queries.csv.
func (om *OutputManager) WriteQuery(rec QueryRecord) error {
	if om == nil {
		return nil
	}

	records := []QueryRecord{rec}

	if !om.queriesHeaderWritten {
		if err := gocsv.Marshal(records, om.queriesFile); err != nil {
			return fmt.Errorf("writing query record: %w", err)
		}
		om.queriesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.queriesFile); err != nil {
			return fmt.Errorf("writing query record: %w", err)
		}
	}

	return nil
}

// WriteWindow writes a window stats record to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.windowsHeaderWritten {
		if err := gocsv.Marshal(records, om.windowsFile); err != nil {
			return fmt.Errorf("writing window stats: %w", err)
		}
		om.windowsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.windowsFile); err != nil {
			return fmt.Errorf("writing window stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.queriesFile != nil {
		if err := om.queriesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.windowsFile != nil {
		if err := om.windowsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
