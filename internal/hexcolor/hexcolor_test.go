package hexcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"#000000", "#FFFFFF", "#1a2B3c"} {
		assert.True(t, IsValid(s), s)
	}
	for _, s := range []string{"", "#", "#fff", "000000", "#0000000", "#00000g", " #000000", "#000000\n"} {
		assert.False(t, IsValid(s), "%q", s)
	}
}

func TestIsPartial(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"#", "#1", "#1a", "#1A2", "#1a2b3c"} {
		assert.True(t, IsPartial(s), s)
	}
	for _, s := range []string{"", "1a2", "#1a2b3c4", "#xyz", "##"} {
		assert.False(t, IsPartial(s), "%q", s)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#1a2b3c", Normalize(" 1a2b3c "))
	assert.Equal(t, "#1a2b3c", Normalize("#1a2b3c"))
	assert.Equal(t, "", Normalize("   "))
}
