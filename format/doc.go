// Package format names the supported input formats.
//
// # Usage
//
//	// Parse a format name from a flag value
//	f, err := format.ParseFormat("yaml")
//
//	// Guess a file's format from its extension
//	f := format.Detect("doc.yml")
//
// Detect falls back to JSON for unknown extensions, so explicit
// selection (ParseFormat, or the converter's WithFormat option) is the
// only way to read YAML from an unconventional file name.
//
// # Related Packages
//
//   - github.com/joshprk/jsonkdl/parse - Decodes either format to IR
//   - github.com/joshprk/jsonkdl - Selects formats via WithFormat
package format
