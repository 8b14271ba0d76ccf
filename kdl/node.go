package kdl

// NodeFormat carries a node's printed-form metadata. With no format the
// printer indents by depth and terminates with a newline; with one,
// Leading and Trailing print as given and only an empty BeforeChildren
// falls back to the default single space.
type NodeFormat struct {
	Leading        string
	BeforeChildren string
	Trailing       string
}

// Node is a named entity with ordered entries, an optional child
// document, and an optional type annotation. A nil Children is distinct
// from an empty child document: the former prints no braces block at
// all, the latter prints an empty one.
type Node struct {
	Name     Identifier
	Type     *Identifier
	Entries  []*Entry
	Children *Document
	Fmt      *NodeFormat
}

func NewNode(name string) *Node {
	return &Node{Name: Ident(name)}
}

func (n *Node) SetType(ty string) {
	id := Ident(ty)
	n.Type = &id
}

func (n *Node) Push(e *Entry) {
	n.Entries = append(n.Entries, e)
}

// Args returns the positional entries in order.
func (n *Node) Args() []*Entry {
	var args []*Entry
	for _, e := range n.Entries {
		if e.Name == nil {
			args = append(args, e)
		}
	}
	return args
}

// Props returns the named entries in insertion order.
func (n *Node) Props() []*Entry {
	var props []*Entry
	for _, e := range n.Entries {
		if e.Name != nil {
			props = append(props, e)
		}
	}
	return props
}

// Prop returns the named entry under name. With repeated names the last
// one wins, per KDL property semantics.
func (n *Node) Prop(name string) *Entry {
	var res *Entry
	for _, e := range n.Entries {
		if e.Name != nil && e.Name.Value == name {
			res = e
		}
	}
	return res
}
