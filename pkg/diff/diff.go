// Package diff renders line-oriented differences between two palette listings.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 1000
	truncateMessage = "... (diff truncated, exceeds 1,000 lines) ..."
)

// Line is one line of a diff. Op is ' ', '-' or '+'.
type Line struct {
	Op   byte
	Text string
}

// Lines compares before and after line by line. It returns nil when they are
// identical.
func Lines(before, after string) []Line {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Unified renders Lines with ---/+++ headers. Returns "" when there is no
// change.
func Unified(before, after, beforeLabel, afterLabel string) string {
	lines := Lines(before, after)
	if lines == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", beforeLabel)
	fmt.Fprintf(&b, "+++ %s\n", afterLabel)
	for i, l := range lines {
		if i == maxDiffLines {
			b.WriteString(truncateMessage + "\n")
			break
		}
		b.WriteByte(l.Op)
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Changed counts inserted and deleted lines.
func Changed(lines []Line) (added, removed int) {
	for _, l := range lines {
		switch l.Op {
		case '+':
			added++
		case '-':
			removed++
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
