// Package output writes run artifacts: the JSON report consumed by
// downstream tooling and a markdown comparison table for humans. The
// package is deliberately ignorant of what it writes; callers hand it
// marshalable values and pre-built table rows.
//
// This file (json.go) implements the atomic JSON writer. Writes go to a
// temp file in the target directory which is fsynced and renamed into
// place, so a crash mid-write never leaves a corrupt report behind.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON writes v as pretty-printed JSON to filePath atomically.
func WriteJSON(filePath string, v any) (err error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return writeFileAtomic(filePath, append(data, '\n'))
}

// WriteMarkdown writes a rendered markdown report to filePath atomically.
func WriteMarkdown(filePath, content string) error {
	return writeFileAtomic(filePath, []byte(content))
}

// writeFileAtomic writes data to a temp file next to filePath, syncs it,
// and renames it into place.
func writeFileAtomic(filePath string, data []byte) (err error) {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", tmp.Name(), filePath, err)
	}
	return nil
}
