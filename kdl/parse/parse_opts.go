package parse

import "github.com/joshprk/jsonkdl/kdl"

type parseOpts struct {
	version kdl.Version
}

type ParseOption func(*parseOpts)

// WithVersion selects which KDL revision the text is read as. Defaults
// to kdl.DefaultVersion.
func WithVersion(v kdl.Version) ParseOption {
	return func(o *parseOpts) { o.version = v }
}
