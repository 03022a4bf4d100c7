package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/export"
)

func TestParsePosition(t *testing.T) {
	t.Parallel()

	index, err := parsePosition("pin", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	index, err = parsePosition("pin", "0")
	require.NoError(t, err)
	assert.Equal(t, -1, index)

	_, err = parsePosition("pin", "3rd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to pin: reading position \"3rd\"")
}

func TestExportPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Equal(t, filepath.Join("out", "palette.css"), exportPath("", "out", export.KindCSS))
	assert.Equal(t, filepath.Join(dir, "palette.png"), exportPath(dir, "out", export.KindPNG))

	file := filepath.Join(dir, "mine.pdf")
	assert.Equal(t, file, exportPath(file, "out", export.KindPDF))

	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Equal(t, file, exportPath(file, "out", export.KindPDF))
}

func TestPinMarkFallsBackToASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "*", pinMark(true, false))
	assert.Equal(t, "-", pinMark(false, false))
	assert.Equal(t, "●", pinMark(true, true))
	assert.Equal(t, "○", pinMark(false, true))
}

func TestBufferIsNotATerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, isTerminal(&struct{}{}))
	assert.False(t, canPrompt(nil, nil))
}
