// Package parse parses input text into IR nodes.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse YAML instead
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// # Number Literals
//
// The JSON parser never converts numbers: each numeric token's source
// text is stored verbatim on the node (with parsed int64/float64 views
// alongside when the literal fits). The YAML parser does the same with
// scalar tokens. This is what lets numbers of any size or precision
// travel through conversion untouched.
//
// # Errors
//
// Malformed input yields a *SyntaxError carrying 1-based line and
// column, wrapping ErrSyntax.
//
// # Related Packages
//
//   - github.com/joshprk/jsonkdl/ir - IR representation
//   - github.com/joshprk/jsonkdl - Converts IR trees to KDL documents
package parse
