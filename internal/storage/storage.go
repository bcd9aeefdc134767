package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles persistence of generated calendar files
type Storage struct {
	outputDir string
}

// New creates a new Storage instance rooted at outputDir, creating the
// directory if needed. A leading ~ expands to the home directory.
func New(outputDir string) (*Storage, error) {
	if strings.HasPrefix(outputDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outputDir = filepath.Join(home, outputDir[2:])
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{outputDir: outputDir}, nil
}

// Path returns the full path of a calendar file.
func (s *Storage) Path(name string) string {
	return filepath.Join(s.outputDir, name)
}

// ReadPrevious returns the previously written payload for name, or nil if no
// previous file exists.
func (s *Storage) ReadPrevious(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading previous calendar: %w", err)
	}
	return data, nil
}

// WriteResult describes the outcome of writing one calendar file.
type WriteResult struct {
	Path     string
	Changed  bool
	Previous []byte
}

// WriteCalendar overwrites name with payload and reports whether the content
// differs from the previous run.
func (s *Storage) WriteCalendar(name string, payload []byte) (*WriteResult, error) {
	previous, err := s.ReadPrevious(name)
	if err != nil {
		return nil, err
	}

	path := s.Path(name)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return nil, fmt.Errorf("writing calendar: %w", err)
	}

	return &WriteResult{
		Path:     path,
		Changed:  !bytes.Equal(previous, payload),
		Previous: previous,
	}, nil
}
