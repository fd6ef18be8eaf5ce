package settings

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/encoding"
)

// InstallDir returns the directory holding the running executable with
// symlinks resolved. It is computed once per process.
var InstallDir = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
})

// DefaultsFunc populates baseline keys of a Store. When overwrite is false
// it must leave keys that are already present untouched.
type DefaultsFunc func(s *Store, overwrite bool)

// Source describes the backing file of a Store and how to fill it.
// See the Open method.
type Source struct {
	// Dir is the base directory. InstallDir() is used when empty.
	Dir string
	// Name is joined with Dir to form the file path.
	Name string
	// Encoding defaults to DefaultEncoding.
	Encoding encoding.Encoding
	// Defaults may be nil for a store without baseline keys.
	Defaults DefaultsFunc
}

// Path returns the absolute path of the backing file.
func (src Source) Path() string {
	dir := src.Dir
	if dir == "" {
		dir = InstallDir()
	}
	path := filepath.Join(dir, src.Name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// Exists reports whether the backing file is currently on disk, without
// opening it.
func (src Source) Exists() bool {
	return fileExists(src.Path())
}

// Open returns a Store for src:
// 1. the backing file is loaded if it exists
// 2. defaults are applied without overwriting loaded keys
// 3. the result is saved, creating the file if needed
func (src Source) Open() (*Store, error) {
	enc := src.Encoding
	if enc == nil {
		enc = DefaultEncoding
	}
	s := &Store{
		path:     src.Path(),
		enc:      enc,
		defaults: src.Defaults,
	}
	s.Clear()

	if s.Exists() {
		if err := s.Load(); err != nil {
			return nil, err
		}
	}
	s.LoadDefaults(false)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}
