package kdl

// Autoformat rewrites the document's layout to the canonical shape:
// four space indentation, one node per line, a single space before
// each entry, children braces on the node's line, and KDL 2 value
// representations. Entries whose format carries AutoformatKeep are
// left untouched, representation included.
//
// Run Autoformat before EnsureV1 or EnsureV2. It regenerates KDL 2
// shaped representations, so a version pass that ran first is undone.
func (d *Document) Autoformat() {
	d.autoformat(0)
}

func (d *Document) autoformat(depth int) {
	d.Fmt = &DocumentFormat{}
	if depth > 0 && len(d.Nodes) > 0 {
		d.Fmt.Leading = "\n"
		d.Fmt.Trailing = indentString(depth - 1)
	}
	for _, n := range d.Nodes {
		n.autoformat(depth)
	}
}

func (n *Node) autoformat(depth int) {
	n.Fmt = &NodeFormat{
		Leading:        indentString(depth),
		BeforeChildren: " ",
		Trailing:       "\n",
	}
	n.Name.Repr = ""
	if n.Type != nil {
		n.Type.Repr = ""
	}
	for _, e := range n.Entries {
		e.autoformat()
	}
	if n.Children != nil {
		n.Children.autoformat(depth + 1)
	}
}

func (e *Entry) autoformat() {
	if e.Fmt != nil && e.Fmt.AutoformatKeep {
		return
	}
	if e.Name != nil {
		e.Name.Repr = ""
	}
	if e.Type != nil {
		e.Type.Repr = ""
	}
	e.Fmt = &EntryFormat{
		Leading:   " ",
		ValueRepr: e.Value.repr(),
	}
}
