package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile persists a value as an indented JSON file.
type JSONFile[T any] struct {
	Path string
}

// NewJSONFile returns the repository of the file name in dir.
func NewJSONFile[T any](dir, name string) *JSONFile[T] {
	return &JSONFile[T]{Path: filepath.Join(dir, name)}
}

// Load decodes the file. A missing file is reported with an error wrapping
// fs.ErrNotExist.
func (f *JSONFile[T]) Load() (T, error) {
	var v T
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return v, fmt.Errorf("could not open %q: %w", f.Path, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("could not decode %q: %w", f.Path, err)
	}
	return v, nil
}

// Save replaces the file content with v.
//
// The value is written to a temporary file in the same directory then renamed,
// so that a failed write leaves the previous content untouched.
func (f *JSONFile[T]) Save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", f.Path, err)
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", f.Path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", f.Path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("could not replace %q: %w", f.Path, err)
	}
	return nil
}
