package kdl

import (
	"strings"
	"testing"
)

type encodeTest struct {
	name string
	doc  *Document
	out  string
}

func TestEncodeDefaults(t *testing.T) {
	plain := NewDocument()
	plain.Push(NewNode("hello"))

	args := NewDocument()
	n := NewNode("point")
	n.Push(NewArg(NumberValue("0.1")))
	n.Push(NewArg(NumberValue("0.2")))
	args.Push(n)

	props := NewDocument()
	n = NewNode("server")
	n.Push(NewProp("host", StringValue("localhost")))
	props.Push(n)

	typed := NewDocument()
	n = NewNode("joe")
	n.SetType("person")
	typed.Push(n)

	emptyKids := NewDocument()
	n = NewNode("box")
	n.Children = NewDocument()
	emptyKids.Push(n)

	nested := NewDocument()
	n = NewNode("parent")
	kids := NewDocument()
	kids.Push(NewNode("child"))
	n.Children = kids
	nested.Push(n)

	tests := []encodeTest{
		{name: "plain", doc: plain, out: "hello\n"},
		{name: "args", doc: args, out: "point 0.1 0.2\n"},
		{name: "props", doc: props, out: "server host=\"localhost\"\n"},
		{name: "typed", doc: typed, out: "(person)joe\n"},
		{name: "empty children", doc: emptyKids, out: "box {}\n"},
		{name: "nested", doc: nested, out: "parent {\n    child\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.String(); got != tt.out {
				t.Errorf("got %q, want %q", got, tt.out)
			}
		})
	}
}

func TestEncodeValueRepr(t *testing.T) {
	d := NewDocument()
	n := NewNode("n")
	e := NewArg(NumberValue("16"))
	e.Fmt = &EntryFormat{ValueRepr: "0x10"}
	n.Push(e)
	d.Push(n)
	if got, want := d.String(), "n 0x10\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeEntryTypes(t *testing.T) {
	d := NewDocument()
	n := NewNode("item")
	e := NewArg(NumberValue("255"))
	e.SetType("u8")
	n.Push(e)
	p := NewProp("id", StringValue("a1"))
	p.SetType("uuid")
	n.Push(p)
	d.Push(n)
	if got, want := d.String(), "item (u8)255 id=(uuid)\"a1\"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	d := NewDocument()
	d.Push(NewNode("inner"))
	var b strings.Builder
	if err := Encode(d, &b, Depth(2)); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "        inner\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeColorsPercent(t *testing.T) {
	d := NewDocument()
	n := NewNode("load")
	n.Push(NewArg(StringValue("100%")))
	d.Push(n)
	var b strings.Builder
	if err := Encode(d, &b, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"100%"`) {
		t.Errorf("percent mangled in %q", b.String())
	}
}
