package parse

import (
	"github.com/joshprk/jsonkdl/ir"
)

// Parse parses data into an IR tree. The default format is JSON; pass
// ParseYAML or ParseFormat to read something else.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsYAML() {
		return parseYAML(data)
	}
	return parseJSON(data)
}
