package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Store holds the key/value pairs of one settings file together with its
// blank and comment lines. It is not safe for concurrent use.
type Store struct {
	path     string
	enc      encoding.Encoding
	defaults DefaultsFunc

	data  map[string]string
	keys  []string       // insertion order of data
	other map[int]string // line index -> verbatim blank or comment line
}

// Path returns the absolute path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Encoding returns the text encoding used for reading and writing.
func (s *Store) Encoding() encoding.Encoding {
	return s.enc
}

// Exists reports whether the backing file is currently on disk.
func (s *Store) Exists() bool {
	return fileExists(s.path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set inserts or replaces key.
func (s *Store) Set(key, value string) {
	if _, ok := s.data[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.data[key] = value
}

// SetDefault sets key to value if the key is absent or overwrite is true.
func (s *Store) SetDefault(key, value string, overwrite bool) {
	if _, ok := s.data[key]; ok && !overwrite {
		return
	}
	s.Set(key, value)
}

// Delete removes key. Deleting an absent key does nothing.
func (s *Store) Delete(key string) {
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.data)
}

// Keys returns the keys in the order Save writes them.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// All returns a copy of all key/value pairs.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// OtherLines returns a copy of the blank and comment lines by line index.
func (s *Store) OtherLines() map[int]string {
	out := make(map[int]string, len(s.other))
	for i, line := range s.other {
		out[i] = line
	}
	return out
}

// Clear empties the store. The backing file is not touched.
func (s *Store) Clear() {
	s.data = make(map[string]string)
	s.keys = nil
	s.other = make(map[int]string)
}

// LoadDefaults applies the store's DefaultsFunc, if any.
func (s *Store) LoadDefaults(overwrite bool) {
	if s.defaults != nil {
		s.defaults(s, overwrite)
	}
}

// Load replaces the contents of the store with the backing file.
// It returns ErrNotFound if the file does not exist and a *FormatError
// for the first line that is neither blank, a comment nor key=value.
// Lines read before a failing line stay in the store.
func (s *Store) Load() error {
	s.Clear()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to find %q: %w", s.path, ErrNotFound)
		}
		return err
	}
	defer f.Close()

	lines, err := readLines(transform.NewReader(f, unicode.BOMOverride(s.enc.NewDecoder())))
	if err != nil {
		return err
	}

	for i, line := range lines {
		kind, key, value := classify(line)
		switch kind {
		case lineOther:
			// A trailing blank or comment line is not kept.
			if i < len(lines)-1 {
				s.other[i] = line
			}
		case lineInvalid:
			return &FormatError{Path: s.path, Line: i}
		default:
			s.Set(key, value)
		}
	}

	slog.Debug("loaded settings", "path", s.path, "keys", len(s.data), "other", len(s.other))
	return nil
}

// Save overwrites the backing file with the current contents. Blank and
// comment lines go back to their recorded index; data lines fill the
// remaining indices in key order. Lines end with CRLF.
func (s *Store) Save() error {
	raw, err := s.enc.NewEncoder().Bytes([]byte(s.render()))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return err
	}

	slog.Debug("saved settings", "path", s.path, "keys", len(s.data), "other", len(s.other))
	return nil
}

func (s *Store) render() string {
	var b strings.Builder
	d, o := 0, 0
	for i := 0; d < len(s.keys) || o < len(s.other); i++ {
		if line, ok := s.other[i]; ok {
			b.WriteString(line)
			o++
		} else if d < len(s.keys) {
			key := s.keys[d]
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(s.data[key])
			d++
		} else {
			// Out of data lines before the next recorded index.
			continue
		}
		b.WriteString("\r\n")
	}
	return b.String()
}
