package kdl

import "strings"

// DocumentFormat carries the trivia surrounding a document's nodes: for
// a child document that is the text after the opening brace and before
// the closing one.
type DocumentFormat struct {
	Leading  string
	Trailing string
}

// Document is an ordered sequence of nodes. The top-level document and
// every node's child document use this same type.
type Document struct {
	Nodes []*Node
	Fmt   *DocumentFormat
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Push(n *Node) {
	d.Nodes = append(d.Nodes, n)
}

// Node returns the first node named name, or nil.
func (d *Document) Node(name string) *Node {
	for _, n := range d.Nodes {
		if n.Name.Value == name {
			return n
		}
	}
	return nil
}

// String renders the document. Building into a strings.Builder cannot
// fail, so unlike Encode there is no error to report.
func (d *Document) String() string {
	b := &strings.Builder{}
	if err := Encode(d, b); err != nil {
		panic(err)
	}
	return b.String()
}
