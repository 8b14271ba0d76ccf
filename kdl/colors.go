package kdl

import (
	"strings"

	"github.com/fatih/color"
)

// ColorAttr says which syntactic piece of a document is being colored.
type ColorAttr int

const (
	ValueColor ColorAttr = iota
	NameColor
	PropColor
	TypeColor
	SepColor
)

// Colorable keys the color map. Kind is meaningful only when Attr is
// ValueColor; every other attribute colors the same way for all kinds.
type Colorable struct {
	Attr ColorAttr
	Kind ValueKind
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func colorDefault(v string, _ ...any) string {
	return v
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Attr: NameColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Attr: PropColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Attr: TypeColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Kind = NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	// value text may contain '%', which Sprintf style funcs would eat
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func (c *Colors) Color(a ColorAttr, k ValueKind, s string) string {
	return c.Get(a, k)(s)
}

func (c *Colors) Get(a ColorAttr, k ValueKind) func(string, ...any) string {
	key := Colorable{Attr: a}
	if a == ValueColor {
		key.Kind = k
	}
	f := c.Map[key]
	if f == nil {
		return c.Default
	}
	return f
}
