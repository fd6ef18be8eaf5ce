// Package settings implements a line-oriented key=value configuration file
// that keeps comments and blank lines where they were.
//
// # Usage
//
// A Store is opened from a Source. Opening loads the file if it exists,
// applies defaults without clobbering present keys and writes the result
// back immediately:
//
//	src := settings.Source{
//	    Name: "app.cfg",
//	    Defaults: func(s *settings.Store, overwrite bool) {
//	        s.SetDefault("theme", "light", overwrite)
//	    },
//	}
//	s, err := src.Open()
//	if err != nil {
//	    return err
//	}
//	s.Set("theme", "dark")
//	err = s.Save()
//
// # File Format
//
// The file is a sequence of CRLF terminated lines. A line is either blank,
// a comment (optional leading whitespace, then '#') or a data line
// "key=value". The key stops at the first '='; the value is the rest of the
// line and may contain further '=' characters. Any other line that
// contains a '#' is kept like a comment. Lines have no length limit.
//
// Blank and comment lines are remembered by their line index and written
// back at that same index on Save. Data lines fill every other index in
// the order keys were first seen. A blank or comment line that is the very
// last line of the file is not remembered.
//
// # Encoding
//
// Files are UTF-16 little endian with a byte order mark unless Source
// names another encoding. On read a byte order mark always wins over the
// configured encoding.
package settings
