// Package filesystem holds the afero backend every other package does its file I/O through,
// so tests can swap the real disk for memory.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
