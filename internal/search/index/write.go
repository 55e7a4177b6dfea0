package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write installs idx at path atomically: the document is written to a temp
// file in the target directory, the previous cache (if any) is moved to a
// .bak alongside, and the temp file is renamed into place. On rename failure
// the backup is restored. A reader therefore never observes a partially
// written cache.
func Write(path string, idx *Index) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create cache dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal index: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp index file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cannot write temp index file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cannot close temp index file: %w", err)
	}

	backup := path + ".bak"
	_ = os.Remove(backup)
	hadPrev := false
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, backup); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("cannot back up previous index: %w", err)
		}
		hadPrev = true
	}
	if err := os.Rename(tmpPath, path); err != nil {
		// rollback best-effort
		if hadPrev {
			_ = os.Rename(backup, path)
		}
		_ = os.Remove(tmpPath)
		return fmt.Errorf("cannot install index %s: %w", path, err)
	}
	_ = os.Remove(backup)
	return nil
}
