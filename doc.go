// Package jsonkdl converts JSON and YAML documents to KDL.
//
// # Input Shape
//
// The input describes a KDL document directly rather than arbitrary
// data: the root is an array of node objects, and each node object
// carries the node's pieces under fixed keys.
//
//	[
//	  {
//	    "name": "point",
//	    "arguments": [1, 2.5],
//	    "properties": {"label": "origin"},
//	    "children": [],
//	    "type": null
//	  }
//	]
//
// produces
//
//	point 1 2.5 label="origin" {}
//
// Only "name" is required. "children" distinguishes absent from empty:
// an omitted key means no braces block at all, [] prints an empty one.
// Argument and property values are scalars, or objects of the form
// {"value": ..., "type": ...} when a type annotation is wanted.
// Annotations also hang off nodes through their "type" key.
//
// # Number Fidelity
//
// Numbers never pass through a float. The parsers keep each numeric
// literal's source text, the converter pins that text into the entry's
// printed representation, and the formatting passes leave pinned
// numbers alone. A literal with hundreds of significant digits, or an
// exponent no float can hold, comes out of the converter byte for byte
// as it went in.
//
// # Pipeline
//
// Convert runs the full chain: decode (JSON by default, YAML with
// WithFormat), an optional raw-JSON patch (WithPatch, RFC 6902 or RFC
// 7386), an optional node filter (WithFilter, an expression over each
// node's name, args, props, children and depth), the tree mapping,
// layout normalization, and a version pass pinning KDL 1 or KDL 2
// keyword and quoting forms. ConvertFile adds extension-based format
// detection; ConvertTree stops before normalization and returns the
// document for callers that post-process it.
//
// # Errors
//
// Malformed input text surfaces the parsers' errors under
// parse.ErrSyntax. Input that parsed but has the wrong shape reports
// ErrStructure with the violated constraint in the message. Patch and
// filter failures report ErrPatch and ErrFilter. All are wrapped, so
// errors.Is picks out the stage that failed.
//
// # Related Packages
//
//   - github.com/joshprk/jsonkdl/parse - Input decoding to IR trees
//   - github.com/joshprk/jsonkdl/ir - The intermediate value tree
//   - github.com/joshprk/jsonkdl/kdl - The KDL document model and printer
//   - github.com/joshprk/jsonkdl/cmd/jsonkdl - The command line tool
package jsonkdl
