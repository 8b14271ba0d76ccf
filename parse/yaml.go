package parse

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/joshprk/jsonkdl/ir"
)

// parseYAML reads the JSON-compatible subset of YAML. Constructs with
// no JSON counterpart (tags, anchors, aliases, merge keys, infinities)
// are rejected rather than approximated. Number scalars keep their
// source text, same as the JSON path.
func parseYAML(data []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err)
	}
	switch len(f.Docs) {
	case 0:
		return nil, fmt.Errorf("%w: empty document", ErrSyntax)
	case 1:
	default:
		return nil, fmt.Errorf("%w: multiple yaml documents", ErrSyntax)
	}
	if f.Docs[0].Body == nil {
		return nil, fmt.Errorf("%w: empty document", ErrSyntax)
	}
	return yamlNode(f.Docs[0].Body)
}

func yamlNode(n ast.Node) (*ir.Node, error) {
	switch v := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(v.Value), nil
	case *ast.IntegerNode:
		return ir.FromNumber(v.GetToken().Value), nil
	case *ast.FloatNode:
		return ir.FromNumber(v.GetToken().Value), nil
	case *ast.StringNode:
		return ir.FromString(v.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(v.Value.Value), nil
	case *ast.SequenceNode:
		arr := &ir.Node{Type: ir.ArrayType}
		for _, elt := range v.Values {
			c, err := yamlNode(elt)
			if err != nil {
				return nil, err
			}
			arr.Append(c)
		}
		return arr, nil
	case *ast.MappingNode:
		obj := &ir.Node{Type: ir.ObjectType}
		for _, kv := range v.Values {
			if err := yamlPair(obj, kv); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case *ast.MappingValueNode:
		// goccy hands single-pair mappings back as the pair itself
		obj := &ir.Node{Type: ir.ObjectType}
		if err := yamlPair(obj, v); err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, yamlErrf(n, "unsupported yaml %s", yamlKind(n))
}

func yamlPair(obj *ir.Node, kv *ast.MappingValueNode) error {
	key, err := yamlKey(kv.Key)
	if err != nil {
		return err
	}
	val, err := yamlNode(kv.Value)
	if err != nil {
		return err
	}
	obj.Set(key, val)
	return nil
}

func yamlKey(n ast.Node) (string, error) {
	switch v := n.(type) {
	case *ast.StringNode:
		return v.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return n.GetToken().Value, nil
	}
	return "", yamlErrf(n, "unsupported yaml key %s", yamlKind(n))
}

func yamlErrf(n ast.Node, format string, args ...any) error {
	if tok := n.GetToken(); tok != nil && tok.Position != nil {
		return &SyntaxError{
			Line: tok.Position.Line,
			Col:  tok.Position.Column,
			Msg:  fmt.Sprintf(format, args...),
		}
	}
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func yamlKind(n ast.Node) string {
	switch n.(type) {
	case *ast.TagNode:
		return "tag"
	case *ast.AnchorNode:
		return "anchor"
	case *ast.AliasNode:
		return "alias"
	case *ast.MergeKeyNode:
		return "merge key"
	case *ast.InfinityNode:
		return "infinity"
	case *ast.NanNode:
		return "nan"
	}
	return fmt.Sprintf("%T", n)
}
