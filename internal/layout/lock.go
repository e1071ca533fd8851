// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hearthmc/hearth/pkg/manifest"
)

type (
	// Lock is the launch recipe written at the end of a client install and
	// read verbatim by the executor.
	Lock struct {
		Start Start             `json:"start"`
		Vars  map[string]string `json:"vars"`
	}

	// Start holds everything the command builder needs beyond the base
	// manifest's libraries.
	Start struct {
		// ExtraLibraries are install-root-relative classpath entries that
		// precede the base libraries.
		ExtraLibraries []string              `json:"extraLibraries,omitempty"`
		GameArguments  manifest.ArgumentList `json:"gameArguments"`
		JVMArguments   manifest.ArgumentList `json:"jvmArguments"`
		MainClass      string                `json:"mainClass"`
	}
)

// ReadLock reads a lock. A missing file is reported with an error that
// wraps os.ErrNotExist.
func ReadLock(path string) (*Lock, error) {
	var l Lock
	if err := ReadJSON(path, &l); err != nil {
		return nil, err
	}
	if l.Vars == nil {
		l.Vars = map[string]string{}
	}
	return &l, nil
}

// WriteLock writes a lock, creating the metadata directory if needed.
func WriteLock(path string, l *Lock) error {
	return WriteJSON(path, l)
}

// ReadJSON decodes the JSON file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteJSON encodes v as indented JSON and replaces path atomically.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Cleanup errors are ignored; the write error is the one reported.
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
