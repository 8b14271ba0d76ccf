package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

// FromNumber builds a number node from its source literal text. The
// literal is authoritative; the Int64/Float64 views are best effort and
// stay nil when the literal exceeds their range or precision.
func FromNumber(lit string) *Node {
	n := &Node{
		Type:   NumberType,
		Number: lit,
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		n.Int64 = &i
		return n
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		n.Float64 = &f
	}
	return n
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set inserts v under field. A repeated key replaces the earlier value
// in place, keeping first-insertion order.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Sketch renders the subtree one node per line, indented by depth:
// the type, then a scalar payload or a child count. Meant for debug
// logs, where a full struct dump drowns the shape in pointers.
func (y *Node) Sketch() string {
	var b strings.Builder
	depth := 0
	y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return false, nil
		}
		fmt.Fprintf(&b, "%*s%s", 2*depth, "", n.Type)
		switch {
		case !n.Type.IsLeaf():
			fmt.Fprintf(&b, " (%d)", len(n.Values))
		case n.Type == StringType:
			fmt.Fprintf(&b, " %q", n.String)
		case n.Type == NumberType:
			fmt.Fprintf(&b, " %s", n.Number)
		case n.Type == BoolType:
			fmt.Fprintf(&b, " %t", n.Bool)
		}
		b.WriteByte('\n')
		depth++
		return true, nil
	})
	return b.String()
}

// ToAny converts the subtree to plain Go values. Object order is lost;
// numbers use a parsed view when one exists and fall back to literal
// text. Intended for expression evaluation and debug dumps, not for
// re-emission.
func (y *Node) ToAny() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case ArrayType:
		vals := make([]any, len(y.Values))
		for i, v := range y.Values {
			vals[i] = v.ToAny()
		}
		return vals
	case ObjectType:
		m := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			m[f] = y.Values[i].ToAny()
		}
		return m
	}
	return nil
}
