package settings

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is UTF-16 little endian. Files written with it start
// with a byte order mark.
var DefaultEncoding encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// EncodingByName maps a label to an encoding. An empty label, "unicode"
// and "utf-16" select DefaultEncoding; anything else is looked up among
// the WHATWG encoding labels ("utf-8", "utf-16be", "windows-1252", ...).
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf-16":
		return DefaultEncoding, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}
