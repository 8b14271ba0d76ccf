package jsonkdl

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// applyPatch rewrites raw JSON document bytes with patch. A patch whose
// first significant byte is '[' is an RFC 6902 operation list; anything
// else is treated as an RFC 7386 merge patch.
func applyPatch(doc, patch []byte) ([]byte, error) {
	trimmed := bytes.TrimLeft(patch, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty patch document", ErrPatch)
	}
	if trimmed[0] == '[' {
		ops, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrPatch, err)
		}
		out, err := ops.Apply(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrPatch, err)
		}
		return out, nil
	}
	out, err := jsonpatch.MergePatch(doc, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPatch, err)
	}
	return out, nil
}
