package debug

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// Logf writes one trace line to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Dump writes a labeled deep dump of v to stderr. Useful for IR trees
// and document structures where %v flattens too much.
func Dump(label string, v any) {
	fmt.Fprintf(os.Stderr, "%s:\n", label)
	spew.Fdump(os.Stderr, v)
}
