// Package filesystem provides a swappable abstraction layer for every filesystem operation of the shell.
//
// The OS backend is used at runtime; tests switch to an in-memory backend so that
// explorer operations can be exercised without touching the disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// IsOs reports whether the active backend is the native operating system filesystem.
func IsOs() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
