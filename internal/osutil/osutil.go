// Package osutil abstracts the OS calls used for locating the log and
// config files, so their error paths can be exercised in tests.
package osutil

import "os"

// PathProvider is the set of OS operations the path helpers depend on.
type PathProvider interface {
	UserHomeDir() (string, error)
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider forwards to the real OS functions.
type DefaultPathProvider struct{}

// UserHomeDir returns the current user's home directory.
func (DefaultPathProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// UserConfigDir returns the root directory for user-specific
// configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory along with any missing parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level provider. Production code uses the
// default; tests swap it out.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider replaces the provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider restores the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
