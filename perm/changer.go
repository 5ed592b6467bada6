package perm

import (
	"os"

	"github.com/fexp-cli/fexp/filesystem"
)

// Posix sets mode bits through the active filesystem backend.
type Posix struct{}

func (Posix) Chmod(path string, mode os.FileMode) error {
	return filesystem.API().Chmod(path, mode)
}

func (Posix) Simulated() bool { return false }

// Simulated succeeds whenever the target can be stat'ed and changes nothing.
type Simulated struct{}

func (Simulated) Chmod(path string, _ os.FileMode) error {
	_, err := filesystem.API().Stat(path)
	return err
}

func (Simulated) Simulated() bool { return true }
