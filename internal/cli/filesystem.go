package cli

import (
	"os"
	"path/filepath"
)

// Filesystem is the part of the filesystem the cleanup steps touch.
type Filesystem interface {
	Abs(path string) (string, error)
	Exists(path string) bool
	IsDir(path string) bool
	Remove(path string) error
	RemoveAll(path string) error
}

// OSFilesystem implements Filesystem on the real filesystem.
type OSFilesystem struct{}

var _ Filesystem = OSFilesystem{}

// Abs returns the cleaned absolute form of path.
func (OSFilesystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Exists reports whether path exists.
func (OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory. Symlinks are not followed, so a
// link to a directory is removed as a file.
func (OSFilesystem) IsDir(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// Remove deletes a single file.
func (OSFilesystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes a directory tree.
func (OSFilesystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
