package kdl

type ValueKind int

const (
	NullKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
)

func (k ValueKind) String() string {
	s, ok := map[ValueKind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		NumberKind: "Number",
		StringKind: "String",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Value is a KDL value. The Number kind carries only the source literal
// text under Number; there is no parsed numeric payload. The literal is
// what the printer emits, so numbers of any magnitude or precision pass
// through unchanged.
type Value struct {
	Kind   ValueKind
	Bool   bool
	String string
	Number string
}

func NullValue() Value {
	return Value{Kind: NullKind}
}

func BoolValue(v bool) Value {
	return Value{Kind: BoolKind, Bool: v}
}

func StringValue(s string) Value {
	return Value{Kind: StringKind, String: s}
}

func NumberValue(lit string) Value {
	return Value{Kind: NumberKind, Number: lit}
}

// repr returns the canonical KDL 2 text of the value. Version targeting
// rewrites keyword reprs afterwards; number literals are returned as is.
func (v Value) repr() string {
	return v.reprVersion(V2)
}

func (v Value) reprVersion(ver Version) string {
	switch v.Kind {
	case NullKind:
		if ver == V1 {
			return "null"
		}
		return "#null"
	case BoolKind:
		kw := "false"
		if v.Bool {
			kw = "true"
		}
		if ver == V1 {
			return kw
		}
		return "#" + kw
	case StringKind:
		return QuoteString(v.String)
	case NumberKind:
		return v.Number
	}
	return ""
}
