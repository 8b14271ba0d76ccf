package kdl

import (
	"io"
	"strings"
)

const indentUnit = "    "

func indentString(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

type encState struct {
	depth int

	Color func(ColorAttr, ValueKind, string) string
}

type EncodeOption func(*encState)

// Depth offsets the indentation of every printed node, for embedding a
// document inside surrounding output.
func Depth(n int) EncodeOption {
	return func(es *encState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}

// Encode renders the document to w. Printing is version-agnostic: any
// version-specific text lives in identifier and value reprs placed by
// parsing, Autoformat, or an Ensure pass, and entries without reprs
// derive KDL 2 shaped defaults.
func Encode(d *Document, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeDocument(d, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *encState) color(a ColorAttr, k ValueKind, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, k, s)
}

func (es *encState) colorAttr(a ColorAttr, s string) string {
	return es.color(a, NullKind, s)
}

func encodeDocument(d *Document, w io.Writer, es *encState) error {
	if d.Fmt != nil {
		if err := writeString(w, d.Fmt.Leading); err != nil {
			return err
		}
	}
	for _, n := range d.Nodes {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	if d.Fmt != nil {
		return writeString(w, d.Fmt.Trailing)
	}
	return nil
}

func encodeNode(n *Node, w io.Writer, es *encState) error {
	leading := indentString(es.depth)
	trailing := "\n"
	if n.Fmt != nil {
		leading, trailing = n.Fmt.Leading, n.Fmt.Trailing
	}
	if err := writeString(w, leading); err != nil {
		return err
	}
	if n.Type != nil {
		if err := writeAnnotation(n.Type, w, es); err != nil {
			return err
		}
	}
	if err := writeString(w, es.colorAttr(NameColor, n.Name.repr())); err != nil {
		return err
	}
	for _, e := range n.Entries {
		if err := encodeEntry(e, w, es); err != nil {
			return err
		}
	}
	if n.Children != nil {
		if err := encodeChildren(n, w, es); err != nil {
			return err
		}
	}
	return writeString(w, trailing)
}

func writeAnnotation(id *Identifier, w io.Writer, es *encState) error {
	s := es.colorAttr(SepColor, "(") +
		es.colorAttr(TypeColor, id.repr()) +
		es.colorAttr(SepColor, ")")
	return writeString(w, s)
}

func encodeEntry(e *Entry, w io.Writer, es *encState) error {
	leading := " "
	if e.Fmt != nil && e.Fmt.Leading != "" {
		leading = e.Fmt.Leading
	}
	if err := writeString(w, leading); err != nil {
		return err
	}
	if e.Name != nil {
		s := es.colorAttr(PropColor, e.Name.repr()) + es.colorAttr(SepColor, "=")
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if e.Type != nil {
		if err := writeAnnotation(e.Type, w, es); err != nil {
			return err
		}
	}
	if err := writeString(w, es.color(ValueColor, e.Value.Kind, e.ValueRepr())); err != nil {
		return err
	}
	if e.Fmt != nil && e.Fmt.Trailing != "" {
		return writeString(w, e.Fmt.Trailing)
	}
	return nil
}

func encodeChildren(n *Node, w io.Writer, es *encState) error {
	before := " "
	if n.Fmt != nil && n.Fmt.BeforeChildren != "" {
		before = n.Fmt.BeforeChildren
	}
	if err := writeString(w, before+es.colorAttr(SepColor, "{")); err != nil {
		return err
	}
	d := n.Children
	if len(d.Nodes) == 0 && d.Fmt == nil {
		return writeString(w, es.colorAttr(SepColor, "}"))
	}
	leading, trailing := "\n", indentString(es.depth)
	if d.Fmt != nil {
		leading, trailing = d.Fmt.Leading, d.Fmt.Trailing
	}
	if err := writeString(w, leading); err != nil {
		return err
	}
	es.depth++
	for _, c := range d.Nodes {
		if err := encodeNode(c, w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, trailing+es.colorAttr(SepColor, "}"))
}
