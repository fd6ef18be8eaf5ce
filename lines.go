package settings

import (
	"bytes"
	"io"
	"strings"
)

// lineKind classifies a single line of a settings file.
type lineKind int

const (
	lineData lineKind = iota
	lineOther
	lineInvalid
)

// classify reports what kind of line s is. For data lines it also
// returns the key and value.
func classify(s string) (kind lineKind, key, value string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return lineOther, "", ""
	}
	// The key holds at least one character, so a leading '=' belongs to it.
	if i := strings.IndexByte(s[1:], '='); i >= 0 {
		i++
		return lineData, s[:i], s[i+1:]
	}
	// Text with a '#' but no key is kept verbatim like a comment.
	if strings.Contains(s, "#") {
		return lineOther, "", ""
	}
	return lineInvalid, "", ""
}

// readLines splits r into lines on CRLF, LF or a lone CR. A terminator at
// the end of input does not start another line. Lines have no length limit.
func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	for len(data) > 0 {
		advance, line := nextLine(data)
		lines = append(lines, string(line))
		data = data[advance:]
	}
	return lines, nil
}

// nextLine returns the first line of data and the number of bytes it
// occupies including its terminator. data must not be empty.
func nextLine(data []byte) (advance int, line []byte) {
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		return len(data), data
	case data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n':
		return i + 2, data[:i]
	default:
		return i + 1, data[:i]
	}
}
