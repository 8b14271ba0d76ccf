package kdl

import (
	"errors"
	"fmt"
)

// Version selects which KDL specification revision a document is
// canonicalized against.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

// DefaultVersion is the revision targeted when none is requested.
const DefaultVersion = V2

var ErrBadVersion = errors.New("bad kdl version")

func ParseVersion(v string) (Version, error) {
	ver, ok := map[string]Version{
		"1":      V1,
		"v1":     V1,
		"kdl-v1": V1,
		"2":      V2,
		"v2":     V2,
		"kdl-v2": V2,
	}[v]
	if ok {
		return ver, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadVersion, v)
}

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return "<unknown version>"
	}
}

// EnsureV1 rewrites the document's printed forms to KDL 1 shape: bare
// null/true/false keywords and version 1 identifier quoting. Number
// literals are never touched.
//
// Ordering matters: Autoformat regenerates KDL 2 shaped representations
// for everything it rewrites, so it must run before EnsureV1, never
// after.
func (d *Document) EnsureV1() { d.ensure(V1) }

// EnsureV2 rewrites the document's printed forms to KDL 2 shape
// (#null, #true, #false and version 2 identifier quoting). The same
// ordering constraint as EnsureV1 applies.
func (d *Document) EnsureV2() { d.ensure(V2) }

func (d *Document) ensure(v Version) {
	for _, n := range d.Nodes {
		n.ensure(v)
	}
}

func (n *Node) ensure(v Version) {
	n.Name.Repr = IdentRepr(n.Name.Value, v)
	if n.Type != nil {
		n.Type.Repr = IdentRepr(n.Type.Value, v)
	}
	for _, e := range n.Entries {
		e.ensure(v)
	}
	if n.Children != nil {
		n.Children.ensure(v)
	}
}

func (e *Entry) ensure(v Version) {
	if e.Name != nil {
		e.Name.Repr = IdentRepr(e.Name.Value, v)
	}
	if e.Type != nil {
		e.Type.Repr = IdentRepr(e.Type.Value, v)
	}
	if e.Value.Kind == NumberKind {
		// literal text is authoritative for numbers
		return
	}
	if e.Fmt == nil {
		e.Fmt = &EntryFormat{}
	}
	e.Fmt.ValueRepr = e.Value.reprVersion(v)
}
