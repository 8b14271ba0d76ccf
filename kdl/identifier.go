package kdl

// Identifier is a node name, a property name, or a type annotation.
// Value is the semantic text; Repr, when non-empty, is the exact
// printed form (set by parsing or by a version-targeting pass). With no
// Repr the printer derives a KDL 2 shaped form on the fly.
type Identifier struct {
	Value string
	Repr  string
}

func Ident(v string) Identifier {
	return Identifier{Value: v}
}

func (id *Identifier) repr() string {
	if id.Repr != "" {
		return id.Repr
	}
	return IdentRepr(id.Value, V2)
}

// IdentRepr returns the printed form of an identifier under version v:
// bare when it survives re-lexing as a bare identifier in that
// revision, quoted otherwise.
func IdentRepr(value string, v Version) string {
	if BareIdentOK(value, v) {
		return value
	}
	return QuoteString(value)
}
