package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteIfChanged writes the dashboard atomically (temp file + rename in the
// same directory). When the new content matches the existing file modulo
// the timestamp line, the write is skipped and false is returned.
func WriteIfChanged(path, content string) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil {
		if StripTimestamp(string(existing)) == StripTimestamp(content) {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".dashboard-*.md")
	if err != nil {
		return false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to write dashboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return false, err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to replace dashboard: %w", err)
	}

	return true, nil
}
