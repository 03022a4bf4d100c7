// Package hexcolor recognizes complete and partially typed "#rrggbb" colors.
package hexcolor

import (
	"regexp"
	"strings"
)

var (
	validPattern   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	partialPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{0,6}$`)
)

// IsValid reports whether s is "#" followed by exactly six hex digits.
func IsValid(s string) bool {
	return validPattern.MatchString(s)
}

// IsPartial reports whether s is "#" followed by up to six hex digits, i.e. a
// prefix of some valid color that an input field may hold while typing.
func IsPartial(s string) bool {
	return partialPattern.MatchString(s)
}

// Normalize trims surrounding whitespace and adds a missing leading "#".
// It does not validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}
