package jsonkdl

import "errors"

// ErrStructure wraps every complaint about input that parsed fine but
// does not have the shape a document needs: a non-array root, a
// nameless node, arguments that aren't an array. Errors carry the
// specific constraint in their message and match ErrStructure with
// errors.Is.
var ErrStructure = errors.New("invalid document structure")

// ErrPatch wraps failures while decoding or applying a --patch
// document.
var ErrPatch = errors.New("patch error")

// ErrFilter wraps failures while compiling or evaluating a --filter
// expression.
var ErrFilter = errors.New("filter error")
