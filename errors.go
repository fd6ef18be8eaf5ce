package settings

import (
	"fmt"
	"io/fs"
)

// ErrNotFound is returned by Load when the backing file does not exist.
// It matches fs.ErrNotExist under errors.Is.
var ErrNotFound = fmt.Errorf("settings file not found: %w", fs.ErrNotExist)

// FormatError reports a line that is neither blank, a comment nor a
// key=value pair.
type FormatError struct {
	Path string
	Line int // 0-based
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(`%s: line %d: neither "=" nor "#" are present`, e.Path, e.Line)
}
