package jsonkdl

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshprk/jsonkdl/debug"
	"github.com/joshprk/jsonkdl/format"
	"github.com/joshprk/jsonkdl/kdl"
	"github.com/joshprk/jsonkdl/parse"
)

type convertOpts struct {
	version   kdl.Version
	format    format.Format
	formatSet bool
	patch     []byte
	filter    string
	colors    *kdl.Colors
}

type Option func(*convertOpts)

// WithVersion selects the KDL revision the output conforms to. The
// default is kdl.DefaultVersion.
func WithVersion(v kdl.Version) Option {
	return func(o *convertOpts) { o.version = v }
}

// WithFormat fixes the input format, overriding extension detection in
// ConvertFile.
func WithFormat(f format.Format) Option {
	return func(o *convertOpts) {
		o.format = f
		o.formatSet = true
	}
}

// WithPatch applies an RFC 6902 or RFC 7386 patch document to the raw
// input before parsing. Patching requires JSON input.
func WithPatch(patch []byte) Option {
	return func(o *convertOpts) { o.patch = patch }
}

// WithFilter keeps only the node objects for which the expression
// evaluates true. See the package documentation for the expression
// environment.
func WithFilter(src string) Option {
	return func(o *convertOpts) { o.filter = src }
}

// WithColors renders the output with ANSI colors.
func WithColors(c *kdl.Colors) Option {
	return func(o *convertOpts) { o.colors = c }
}

func newOpts(opts []Option) *convertOpts {
	o := &convertOpts{version: kdl.DefaultVersion}
	for _, f := range opts {
		f(o)
	}
	return o
}

// ConvertTree parses src and maps it onto a KDL document, honoring
// WithPatch and WithFilter but skipping layout and version
// normalization. Most callers want Convert; this form exists for
// callers that post-process the document.
func ConvertTree(src []byte, opts ...Option) (*kdl.Document, error) {
	return convertTree(src, newOpts(opts))
}

func convertTree(src []byte, o *convertOpts) (*kdl.Document, error) {
	if len(o.patch) > 0 {
		if o.format.IsYAML() {
			return nil, fmt.Errorf("%w: patches apply to json input only", ErrPatch)
		}
		patched, err := applyPatch(src, o.patch)
		if err != nil {
			return nil, err
		}
		if debug.Pipeline() {
			debug.Logf("patched input: %s\n", patched)
		}
		src = patched
	}
	root, err := parse.Parse(src, parse.ParseFormat(o.format))
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed tree:\n%s", root.Sketch())
	}
	if o.filter != "" {
		f, err := compileFilter(o.filter)
		if err != nil {
			return nil, err
		}
		root, err = f.Apply(root)
		if err != nil {
			return nil, err
		}
		if debug.Pipeline() {
			debug.Logf("filtered tree:\n%s", root.Sketch())
		}
	}
	doc, err := ConvertDocument(root)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Dump("kdl document", doc)
	}
	return doc, nil
}

// Convert runs the whole pipeline: parse src, apply any patch and
// filter, map the tree onto a document, normalize its layout, and pin
// the requested KDL version. The result ends with a newline; an empty
// input array yields the empty string.
func Convert(src []byte, opts ...Option) (string, error) {
	return convert(src, newOpts(opts))
}

func convert(src []byte, o *convertOpts) (string, error) {
	doc, err := convertTree(src, o)
	if err != nil {
		return "", err
	}
	// Layout first. Autoformat regenerates value representations and
	// would undo a version pass that ran before it.
	doc.Autoformat()
	switch o.version {
	case kdl.V1:
		doc.EnsureV1()
	default:
		doc.EnsureV2()
	}
	if o.colors != nil {
		var sb strings.Builder
		if err := kdl.Encode(doc, &sb, kdl.EncodeColors(o.colors)); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
	return doc.String(), nil
}

// ConvertFile reads path and converts its contents. Without WithFormat
// the input format comes from the file extension, where anything that
// is not .yaml or .yml reads as JSON.
func ConvertFile(path string, opts ...Option) (string, error) {
	o := newOpts(opts)
	if !o.formatSet {
		o.format = format.Detect(path)
	}
	if debug.Pipeline() {
		debug.Logf("converting %s as %s\n", path, o.format)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return convert(src, o)
}
