// Package kdl models KDL documents for construction and printing.
//
// # Overview
//
// A Document is an ordered list of Nodes. A Node has a name, an
// optional type annotation, ordered Entries (arguments and properties)
// and an optional Children document. An Entry carries a Value plus an
// optional property name and type annotation.
//
// The model is representation-first: alongside semantic values, every
// printable piece can carry the exact text it should print as. Format
// structs (DocumentFormat, NodeFormat, EntryFormat) hold surrounding
// trivia and value representations; Identifier.Repr holds identifier
// text. Printing never re-derives text that a representation already
// pins down, which is how source number literals survive conversion
// byte for byte.
//
// # Formatting Passes
//
// Three passes rewrite representations in place:
//
//   - Autoformat: canonical layout, KDL 2 shaped value text. Entries
//     marked AutoformatKeep are skipped.
//   - EnsureV1: version 1 keywords (null, true, false) and quoting.
//   - EnsureV2: version 2 keywords (#null, #true, #false) and quoting.
//
// Autoformat must run before an Ensure pass: it regenerates KDL 2
// shaped text, so running it after EnsureV1 silently undoes the
// version rewrite.
//
// # Printing
//
// Encode writes a document to an io.Writer; Document.String is the
// convenience form. Fields left without explicit formats print with
// defaults (four space indentation, one node per line). EncodeColors
// wires a Colors palette in for terminal output.
//
// # Versions
//
// Both KDL specification revisions are supported. The printer itself
// is version-blind; revision differences live entirely in the
// representations placed by the Ensure passes or by parsing.
//
// # Thread Safety
//
// Documents are not thread-safe. Build, rewrite and print from a
// single goroutine.
//
// # Related Packages
//
//   - github.com/joshprk/jsonkdl/kdl/parse - Parses KDL text
//   - github.com/joshprk/jsonkdl - Builds documents from IR trees
package kdl
