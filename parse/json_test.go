package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joshprk/jsonkdl/ir"
)

func TestParseJSONValues(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want any
	}{
		{`null`, nil},
		{`true`, true},
		{`false`, false},
		{`"hello"`, "hello"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"bird"`, "bird"},
		{`"sla\/sh"`, "sla/sh"},
		{`42`, int64(42)},
		{`-0.5`, -0.5},
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{`[1, "two", null]`, []any{int64(1), "two", nil}},
		{`  {"a": 1, "b": [true, false]}  `, map[string]any{
			"a": int64(1),
			"b": []any{true, false},
		}},
		{"{\n\t\"nested\": {\"deep\": [[]]}\n}", map[string]any{
			"nested": map[string]any{"deep": []any{[]any{}}},
		}},
	} {
		n, err := Parse([]byte(tc.in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, n.ToAny()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

// Number literals must come through as source text, not as a float64
// round trip.
func TestParseJSONNumberText(t *testing.T) {
	for _, lit := range []string{
		"0",
		"-0",
		"10",
		"-2",
		"0.5",
		"10.25",
		"-0.1e-3",
		"1e10",
		"1E+9",
		"0.30000000000000004",
		"36893488147419103232",
		"1e10000000",
	} {
		n, err := Parse([]byte(lit))
		if err != nil {
			t.Fatalf("Parse(%q): %v", lit, err)
		}
		if n.Type != ir.NumberType {
			t.Fatalf("Parse(%q): type %v, want number", lit, n.Type)
		}
		if n.Number != lit {
			t.Errorf("Parse(%q): literal %q", lit, n.Number)
		}
	}
}

func TestParseJSONNumberViews(t *testing.T) {
	n, err := Parse([]byte("36893488147419103232")) // 2^65
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64 != nil {
		t.Errorf("2^65 has an int64 view: %d", *n.Int64)
	}
	if n.Float64 == nil {
		t.Error("2^65 lost its float64 view")
	}

	n, err = Parse([]byte("1e10000000"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64 != nil || n.Float64 != nil {
		t.Error("out-of-range literal should have no numeric views")
	}

	n, err = Parse([]byte("-7"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64 == nil || *n.Int64 != -7 {
		t.Errorf("int64 view of -7: %v", n.Int64)
	}
}

func TestParseJSONDupKeys(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, n.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := ir.Get(n, "a").Number; got != "3" {
		t.Errorf(`a = %s, want the later value 3`, got)
	}
}

// A leading byte order mark is not part of the JSON grammar and is
// rejected like any other stray byte.
func TestParseJSONBOM(t *testing.T) {
	_, err := Parse([]byte("\xef\xbb\xbf[1]"))
	if err == nil {
		t.Fatal("BOM-prefixed input parsed")
	}
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("%v is not a syntax error", err)
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("%v has no position", err)
	}
	if se.Line != 1 || se.Col != 1 {
		t.Errorf("failed at L%d,C%d, want L1,C1", se.Line, se.Col)
	}
}

func TestParseJSONErrs(t *testing.T) {
	for _, tc := range []struct {
		in   string
		line int
		col  int
	}{
		{"", 1, 1},
		{"{", 1, 2},
		{`{"a" 1}`, 1, 6},
		{"[1 2]", 1, 4},
		{"01", 1, 2},
		{"1.", 1, 3},
		{"1e+", 1, 4},
		{`"a`, 1, 3},
		{`"a\q"`, 1, 4},
		{"tru", 1, 1},
		{"[1]x", 1, 4},
		{"\n\n  nul", 3, 3},
		{"\"a\x01b\"", 1, 3},
	} {
		_, err := Parse([]byte(tc.in))
		if err == nil {
			t.Fatalf("Parse(%q) did not fail", tc.in)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q): %v is not a syntax error", tc.in, err)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("Parse(%q): %v has no position", tc.in, err)
		}
		if se.Line != tc.line || se.Col != tc.col {
			t.Errorf("Parse(%q) failed at L%d,C%d, want L%d,C%d: %v",
				tc.in, se.Line, se.Col, tc.line, tc.col, err)
		}
	}
}
