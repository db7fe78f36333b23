package fsys

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when a read targets a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// FileSystem is the filesystem collaborator used by the loader: file
// reads and writes, existence checks, and home-directory lookup.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) bool
	HomeDir() (string, error)
}

// OS implements FileSystem against the real filesystem.
type OS struct{}

// NewOS creates an OS-backed FileSystem.
func NewOS() *OS {
	return &OS{}
}

// ReadFile reads the file at path. The path is cleaned first and reads of
// directories are rejected explicitly.
func (o *OS) ReadFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// WriteFile writes data to the file at path, creating it if necessary.
func (o *OS) WriteFile(path string, data []byte) error {
	err := os.WriteFile(filepath.Clean(path), data, 0o600)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", path, err)
	}

	return nil
}

// Exists reports whether path exists.
func (o *OS) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// HomeDir returns the current user's home directory.
func (o *OS) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}

	return home, nil
}
