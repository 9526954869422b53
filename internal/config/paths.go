package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the resolved application directories. All paths are
// relative to the executable directory, never the current working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string
}

// GetPaths resolves the application paths from the executable location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       filepath.Join(exeDir, "data"),
		ReportsDir:    filepath.Join(exeDir, "data", "reports"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}, nil
}

// EnsureDirectories creates the data, reports and logs directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path for a report file.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
