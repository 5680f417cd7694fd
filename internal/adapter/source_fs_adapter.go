// Package adapter contains infrastructure adapters for the declfix CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	m "github.com/mouse-blink/declfix/internal/model"
)

var (
	// ErrNotFound is returned when the target file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrIO is returned for every other read or write failure.
	ErrIO = errors.New("i/o error")
)

// SourceFSAdapter abstracts the filesystem operations the fix workflow needs.
// It hides direct `os` access so the workflow can be tested without touching
// the disk.
type SourceFSAdapter interface {
	// ReadFile loads a UTF-8 text file in full. The file is closed before
	// ReadFile returns.
	ReadFile(path m.Path) (m.Source, error)

	// FileInfo returns metadata for path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile overwrites path with content. The write is not atomic.
	WriteFile(path m.Path, content string, perm os.FileMode) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) (m.Source, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Source{}, classify(path, err)
	}

	if !utf8.Valid(data) {
		return m.Source{}, fmt.Errorf("%w: %s is not valid UTF-8", ErrIO, path)
	}

	return m.Source{Origin: path, Text: string(data)}, nil
}

// FileInfo returns os.Stat for path with errors classified like ReadFile.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return nil, classify(path, err)
	}

	return info, nil
}

// WriteFile writes content to path, truncating whatever was there.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content string, perm os.FileMode) error {
	if err := os.WriteFile(string(path), []byte(content), perm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

func classify(path m.Path, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}
