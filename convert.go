package jsonkdl

import (
	"fmt"

	"github.com/joshprk/jsonkdl/ir"
	"github.com/joshprk/jsonkdl/kdl"
)

// ConvertDocument maps an IR tree onto a KDL document. The root must be
// an array; each element becomes one node.
func ConvertDocument(root *ir.Node) (*kdl.Document, error) {
	if root == nil || root.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: document root must be an array", ErrStructure)
	}
	doc := kdl.NewDocument()
	for _, elem := range root.Values {
		node, err := convertNode(elem)
		if err != nil {
			return nil, err
		}
		doc.Push(node)
	}
	return doc, nil
}

// convertNode maps one object onto a node. Recognized keys are "name",
// "arguments", "properties", "children", and "type"; anything else is
// ignored.
func convertNode(y *ir.Node) (*kdl.Node, error) {
	if y.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: node must be an object", ErrStructure)
	}
	name := ir.Get(y, "name")
	if name == nil {
		return nil, fmt.Errorf("%w: node must have a name", ErrStructure)
	}
	if name.Type != ir.StringType {
		return nil, fmt.Errorf("%w: name must be a string", ErrStructure)
	}
	node := kdl.NewNode(name.String)

	if args := ir.Get(y, "arguments"); args != nil {
		if args.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: arguments must be an array", ErrStructure)
		}
		for _, arg := range args.Values {
			e, err := convertEntry(arg)
			if err != nil {
				return nil, err
			}
			node.Push(e)
		}
	}

	if props := ir.Get(y, "properties"); props != nil {
		if props.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: properties must be an object", ErrStructure)
		}
		for i, key := range props.Fields {
			e, err := convertEntry(props.Values[i])
			if err != nil {
				return nil, err
			}
			e.SetName(key)
			node.Push(e)
		}
	}

	if children := ir.Get(y, "children"); children != nil {
		sub, err := ConvertDocument(children)
		if err != nil {
			return nil, err
		}
		node.Children = sub
	}

	ty, err := convertType(ir.Get(y, "type"))
	if err != nil {
		return nil, err
	}
	node.Type = ty
	return node, nil
}

// convertEntry maps one value onto an entry. A bare scalar converts
// directly; an object is the annotated form, whose "value" key holds
// the scalar and whose "type" key holds the annotation. An object
// without a "value" key converts itself, which fails the scalar switch.
func convertEntry(y *ir.Node) (*kdl.Entry, error) {
	inner := y
	if y.Type == ir.ObjectType {
		if v := ir.Get(y, "value"); v != nil {
			inner = v
		}
	}

	var e *kdl.Entry
	switch inner.Type {
	case ir.NullType:
		e = kdl.NewArg(kdl.NullValue())
	case ir.BoolType:
		e = kdl.NewArg(kdl.BoolValue(inner.Bool))
	case ir.StringType:
		e = kdl.NewArg(kdl.StringValue(inner.String))
	case ir.NumberType:
		e = numberEntry(inner.Number)
	default:
		return nil, fmt.Errorf("%w: unsupported value type for conversion", ErrStructure)
	}

	if y.Type == ir.ObjectType {
		ty, err := convertType(ir.Get(y, "type"))
		if err != nil {
			return nil, err
		}
		e.Type = ty
	}
	return e, nil
}

// numberEntry builds an entry that prints lit verbatim. The literal is
// pinned in the entry's format and flagged so Autoformat leaves it
// alone, which keeps digits beyond float range intact.
func numberEntry(lit string) *kdl.Entry {
	e := kdl.NewArg(kdl.NumberValue(lit))
	e.Fmt = &kdl.EntryFormat{
		ValueRepr:      lit,
		Leading:        " ",
		AutoformatKeep: true,
	}
	return e
}

func convertType(y *ir.Node) (*kdl.Identifier, error) {
	if y == nil || y.Type == ir.NullType {
		return nil, nil
	}
	if y.Type != ir.StringType {
		return nil, fmt.Errorf("%w: type must be a string or null", ErrStructure)
	}
	id := kdl.Ident(y.String)
	return &id, nil
}
