package jsonkdl

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/joshprk/jsonkdl/ir"
)

// nodeFilter keeps or drops node objects according to a compiled
// boolean expression.
type nodeFilter struct {
	prg *vm.Program
}

func compileFilter(src string) (*nodeFilter, error) {
	prg, err := expr.Compile(src, filterOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFilter, err)
	}
	return &nodeFilter{prg: prg}, nil
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	}
}

// Apply evaluates the expression against every node object in root,
// returning a rebuilt tree holding only the nodes that matched. A
// dropped node takes its subtree with it; a kept node's children are
// filtered recursively. Anything that is not a node object passes
// through untouched, so conversion still reports its structural errors.
func (f *nodeFilter) Apply(root *ir.Node) (*ir.Node, error) {
	if root == nil || root.Type != ir.ArrayType {
		return root, nil
	}
	return f.document(root, 0)
}

func (f *nodeFilter) document(arr *ir.Node, depth int) (*ir.Node, error) {
	out := &ir.Node{Type: ir.ArrayType}
	for _, elem := range arr.Values {
		if elem.Type != ir.ObjectType {
			out.Append(elem)
			continue
		}
		keep, err := f.eval(elem, depth)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		children := ir.Get(elem, "children")
		if children == nil || children.Type != ir.ArrayType {
			out.Append(elem)
			continue
		}
		sub, err := f.document(children, depth+1)
		if err != nil {
			return nil, err
		}
		kept := &ir.Node{Type: ir.ObjectType}
		for i, key := range elem.Fields {
			if key == "children" {
				kept.Set(key, sub)
				continue
			}
			kept.Set(key, elem.Values[i])
		}
		out.Append(kept)
	}
	return out, nil
}

// eval runs the expression against one node object. The node's
// recognized keys are bound to plain values; args, props, and children
// default to empty so expressions need no presence checks.
func (f *nodeFilter) eval(y *ir.Node, depth int) (bool, error) {
	env := map[string]any{
		"args":     []any{},
		"props":    map[string]any{},
		"children": []any{},
		"depth":    depth,
		"node":     y.ToAny(),
	}
	if name := ir.Get(y, "name"); name != nil && name.Type == ir.StringType {
		env["name"] = name.String
	}
	if ty := ir.Get(y, "type"); ty != nil && ty.Type == ir.StringType {
		env["type"] = ty.String
	}
	if args := ir.Get(y, "arguments"); args != nil && args.Type == ir.ArrayType {
		env["args"] = args.ToAny()
	}
	if props := ir.Get(y, "properties"); props != nil && props.Type == ir.ObjectType {
		env["props"] = props.ToAny()
	}
	if children := ir.Get(y, "children"); children != nil && children.Type == ir.ArrayType {
		env["children"] = children.ToAny()
	}
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrFilter, err)
	}
	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression returned type %T, want bool", ErrFilter, res)
	}
	return keep, nil
}
