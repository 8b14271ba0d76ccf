// Package textdiff renders line diffs between two texts.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Unified renders a line diff of from and to. Every line of both texts
// appears once, prefixed with "-", "+" or " ". Equal texts yield the
// empty string.
func Unified(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
