package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdentical(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Lines("a\nb\n", "a\nb\n"))
	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "previous", "current"))
}

func TestLinesSingleChange(t *testing.T) {
	t.Parallel()

	before := "1 #000000 Black\n2 #ffffff White\n3 #ff0000 Red\n"
	after := "1 #000000 Black\n2 #101820 Ink\n3 #ff0000 Red\n"

	lines := Lines(before, after)
	require.Equal(t, []Line{
		{Op: ' ', Text: "1 #000000 Black"},
		{Op: '-', Text: "2 #ffffff White"},
		{Op: '+', Text: "2 #101820 Ink"},
		{Op: ' ', Text: "3 #ff0000 Red"},
	}, lines)

	added, removed := Changed(lines)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestUnifiedHeadersAndPrefixes(t *testing.T) {
	t.Parallel()

	out := Unified("a\nb\n", "a\nc\n", "previous", "current")
	assert.Equal(t, "--- previous\n+++ current\n a\n-b\n+c\n", out)
}

func TestUnifiedAppendedLine(t *testing.T) {
	t.Parallel()

	out := Unified("a\n", "a\nb\n", "previous", "current")
	assert.True(t, strings.HasSuffix(out, " a\n+b\n"), out)
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var before strings.Builder
	for range maxDiffLines + 50 {
		before.WriteString("x\n")
	}

	out := Unified(before.String(), "", "previous", "current")
	assert.Contains(t, out, truncateMessage)
	assert.Equal(t, maxDiffLines+3, strings.Count(out, "\n"))
}
