// Package l10n translates user-visible messages of the settings tool.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

var catalog gettext.Catalog

func init() {
	domain := gettext.TextDomain{Name: "settings"}
	catalog = domain.UserLocale()
}

// T localizes str and formats it with vars, if any.
func T(str string, vars ...any) string {
	translation := catalog.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}

// TN localizes a message with a singular and a plural form chosen by n.
func TN(singular, plural string, n uint32, vars ...any) string {
	translation := catalog.NGettext(singular, plural, n)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
