package kdl

// EntryFormat carries an entry's printed-form metadata.
type EntryFormat struct {
	// ValueRepr, when non-empty, is printed verbatim in place of the
	// value's canonical text.
	ValueRepr string
	// Leading is the whitespace before the entry. Empty means the
	// default single space.
	Leading  string
	Trailing string
	// AutoformatKeep excludes the entry from Autoformat rewriting, so
	// a fabricated ValueRepr and Leading survive layout normalization.
	AutoformatKeep bool
}

// Entry is one value attached to a node: positional ("argument") when
// Name is nil, named ("property") otherwise.
type Entry struct {
	Name  *Identifier
	Type  *Identifier
	Value Value
	Fmt   *EntryFormat
}

func NewArg(v Value) *Entry {
	return &Entry{Value: v}
}

func NewProp(name string, v Value) *Entry {
	id := Ident(name)
	return &Entry{Name: &id, Value: v}
}

func (e *Entry) SetName(name string) {
	id := Ident(name)
	e.Name = &id
}

func (e *Entry) SetType(ty string) {
	id := Ident(ty)
	e.Type = &id
}

// ValueRepr returns the text the printer will emit for the entry's
// value.
func (e *Entry) ValueRepr() string {
	if e.Fmt != nil && e.Fmt.ValueRepr != "" {
		return e.Fmt.ValueRepr
	}
	return e.Value.repr()
}
