package kdl

import (
	"errors"
	"testing"
)

func TestQuoteString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: "", out: `""`},
		{in: "hello", out: `"hello"`},
		{in: `say "hi"`, out: `"say \"hi\""`},
		{in: `a\b`, out: `"a\\b"`},
		{in: "line\nbreak", out: `"line\nbreak"`},
		{in: "tab\there", out: `"tab\there"`},
		{in: "\x00", out: `"\u{0}"`},
		{in: "日本", out: `"日本"`},
	}
	for _, tt := range tests {
		if got := QuoteString(tt.in); got != tt.out {
			t.Errorf("QuoteString(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: `"hello"`, out: "hello"},
		{in: `""`, out: ""},
		{in: `"a\u{62}c"`, out: "abc"},
		{in: `"a\sb"`, out: "a b"},
		{in: `"\n\t\r\b\f"`, out: "\n\t\r\b\f"},
		{in: `"\/\\\""`, out: `/\"`},
	}
	for _, tt := range tests {
		got, err := UnquoteString(tt.in)
		if err != nil {
			t.Errorf("UnquoteString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("UnquoteString(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestUnquoteStringErrs(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: `"unterminated`, err: ErrUnterminated},
		{in: ``, err: ErrUnterminated},
		{in: `"\`, err: ErrUnterminated},
		{in: `"\q"`, err: ErrBadEscape},
		{in: `"x" y`, err: ErrBadEscape},
		{in: `"\u62"`, err: ErrBadUnicode},
		{in: `"\u{}"`, err: ErrBadUnicode},
		{in: `"\u{zz}"`, err: ErrBadUnicode},
		{in: `"\u{1234567}"`, err: ErrBadUnicode},
		{in: "\"\xff\"", err: ErrBadUTF8},
	}
	for _, tt := range tests {
		_, err := UnquoteString(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("UnquoteString(%q): got %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestBareIdentOK(t *testing.T) {
	tests := []struct {
		in string
		v  Version
		ok bool
	}{
		{in: "name", v: V2, ok: true},
		{in: "kebab-name", v: V2, ok: true},
		{in: "日本", v: V2, ok: true},
		{in: "-", v: V2, ok: true},
		{in: "", v: V2, ok: false},
		{in: "two words", v: V2, ok: false},
		{in: "true", v: V1, ok: false},
		{in: "null", v: V2, ok: false},
		{in: "inf", v: V1, ok: true},
		{in: "inf", v: V2, ok: false},
		{in: "nan", v: V2, ok: false},
		{in: "-1", v: V2, ok: false},
		{in: ".5", v: V2, ok: false},
		{in: "1x", v: V2, ok: false},
		{in: "a=b", v: V2, ok: false},
		{in: "par(en", v: V2, ok: false},
		{in: "semi;colon", v: V2, ok: false},
	}
	for _, tt := range tests {
		if got := BareIdentOK(tt.in, tt.v); got != tt.ok {
			t.Errorf("BareIdentOK(%q, %v) = %v, want %v", tt.in, tt.v, got, tt.ok)
		}
	}
}
