package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	for tag, want := range map[string]bool{"HEX": true, "rgba": true, "Cmyk": true, "lab": false, "": false} {
		assert.Equal(t, want, v.Var(tag, "format_tag") == nil, "format_tag %q", tag)
	}
	for hex, want := range map[string]bool{"#ffffff": true, "#A1b2C3": true, "ffffff": false, "#fff": false, "": false} {
		assert.Equal(t, want, v.Var(hex, "hexcolor6") == nil, "hexcolor6 %q", hex)
	}
}
