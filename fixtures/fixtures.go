// Package fixtures resolves test fixture names to their raw file bytes.
package fixtures

import (
	"os"
	"path/filepath"
)

// EnvDir overrides the fixture directory when set.
const EnvDir = "PLAYGROUND_FIXTURES"

// Opener resolves a fixture name to its raw bytes.
type Opener func(name string) ([]byte, error)

// DirOpener returns an Opener that reads fixtures from dir.
func DirOpener(dir string) Opener {
	return func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
}

// DefaultDir is the fixture directory for the current process: the
// PLAYGROUND_FIXTURES environment variable if set, otherwise a
// "fixtures" directory next to the running executable.
func DefaultDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "fixtures"
	}
	return filepath.Join(filepath.Dir(exe), "fixtures")
}
