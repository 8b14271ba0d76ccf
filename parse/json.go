package parse

import (
	"encoding/json"
	"fmt"

	"github.com/joshprk/jsonkdl/ir"
)

// jsonScanner walks the input byte by byte with a 1-based line and
// column for error reporting. Number tokens are captured as raw source
// text and handed to the IR unconverted; that capture is the whole
// point of not using a stock JSON decoder here.
type jsonScanner struct {
	d    []byte
	i    int
	line int
	col  int
}

func parseJSON(data []byte) (*ir.Node, error) {
	s := &jsonScanner{d: data, line: 1, col: 1}
	s.space()
	node, err := s.value()
	if err != nil {
		return nil, err
	}
	s.space()
	if s.i < len(s.d) {
		return nil, s.errf("trailing data after value")
	}
	return node, nil
}

func (s *jsonScanner) errf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: s.line, Col: s.col, Msg: fmt.Sprintf(format, args...)}
}

// adv consumes one byte, maintaining the position counters.
func (s *jsonScanner) adv() {
	if s.d[s.i] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.i++
}

func (s *jsonScanner) space() {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\n', '\r':
			s.adv()
		default:
			return
		}
	}
}

func (s *jsonScanner) value() (*ir.Node, error) {
	if s.i >= len(s.d) {
		return nil, s.errf("unexpected end of input")
	}
	switch b := s.d[s.i]; {
	case b == '{':
		return s.object()
	case b == '[':
		return s.array()
	case b == '"':
		str, err := s.str()
		if err != nil {
			return nil, err
		}
		return ir.FromString(str), nil
	case b == 't':
		if err := s.literal("true"); err != nil {
			return nil, err
		}
		return ir.FromBool(true), nil
	case b == 'f':
		if err := s.literal("false"); err != nil {
			return nil, err
		}
		return ir.FromBool(false), nil
	case b == 'n':
		if err := s.literal("null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil
	case b == '-' || b >= '0' && b <= '9':
		return s.number()
	default:
		return nil, s.errf("invalid value starting with %q", b)
	}
}

func (s *jsonScanner) literal(lit string) error {
	if len(s.d)-s.i < len(lit) || string(s.d[s.i:s.i+len(lit)]) != lit {
		return s.errf("invalid literal")
	}
	for j := 0; j < len(lit); j++ {
		s.adv()
	}
	return nil
}

func (s *jsonScanner) object() (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	s.adv() // {
	s.space()
	if s.i < len(s.d) && s.d[s.i] == '}' {
		s.adv()
		return obj, nil
	}
	for {
		s.space()
		if s.i >= len(s.d) || s.d[s.i] != '"' {
			return nil, s.errf("expected object key")
		}
		key, err := s.str()
		if err != nil {
			return nil, err
		}
		s.space()
		if s.i >= len(s.d) || s.d[s.i] != ':' {
			return nil, s.errf("expected ':' after object key")
		}
		s.adv()
		s.space()
		val, err := s.value()
		if err != nil {
			return nil, err
		}
		// duplicate keys: the last value wins, first position kept
		obj.Set(key, val)
		s.space()
		if s.i >= len(s.d) {
			return nil, s.errf("unexpected end of object")
		}
		switch s.d[s.i] {
		case '}':
			s.adv()
			return obj, nil
		case ',':
			s.adv()
		default:
			return nil, s.errf("expected '}' or ',' in object, got %q", s.d[s.i])
		}
	}
}

func (s *jsonScanner) array() (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	s.adv() // [
	s.space()
	if s.i < len(s.d) && s.d[s.i] == ']' {
		s.adv()
		return arr, nil
	}
	for {
		s.space()
		elt, err := s.value()
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		s.space()
		if s.i >= len(s.d) {
			return nil, s.errf("unexpected end of array")
		}
		switch s.d[s.i] {
		case ']':
			s.adv()
			return arr, nil
		case ',':
			s.adv()
		default:
			return nil, s.errf("expected ']' or ',' in array, got %q", s.d[s.i])
		}
	}
}

// str scans a string token. When the token carries no escapes the
// quotes are sliced off directly; otherwise the raw token goes through
// encoding/json for decoding.
func (s *jsonScanner) str() (string, error) {
	start := s.i
	s.adv() // "
	escaped := false
	for s.i < len(s.d) {
		switch b := s.d[s.i]; {
		case b == '"':
			s.adv()
			raw := s.d[start:s.i]
			if !escaped {
				return string(raw[1 : len(raw)-1]), nil
			}
			var str string
			if err := json.Unmarshal(raw, &str); err != nil {
				return "", s.errf("bad string: %s", err)
			}
			return str, nil
		case b == '\\':
			escaped = true
			s.adv()
			if s.i >= len(s.d) {
				return "", s.errf("unterminated string")
			}
			switch s.d[s.i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.adv()
			case 'u':
				s.adv()
				for j := 0; j < 4; j++ {
					if s.i >= len(s.d) || !hexDigit(s.d[s.i]) {
						return "", s.errf("bad unicode escape")
					}
					s.adv()
				}
			default:
				return "", s.errf("bad escape '\\%c'", s.d[s.i])
			}
		case b < 0x20:
			return "", s.errf("control character in string")
		default:
			s.adv()
		}
	}
	return "", s.errf("unterminated string")
}

func hexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// number scans sign, integer, fraction and exponent parts, then builds
// the node from the raw slice. RFC 8259 grammar: no leading zeros, a
// fraction and exponent each need at least one digit.
func (s *jsonScanner) number() (*ir.Node, error) {
	start := s.i
	if s.d[s.i] == '-' {
		s.adv()
	}
	switch {
	case s.i < len(s.d) && s.d[s.i] == '0':
		s.adv()
		if s.i < len(s.d) && s.d[s.i] >= '0' && s.d[s.i] <= '9' {
			return nil, s.errf("malformed number: leading zero")
		}
	case s.i < len(s.d) && s.d[s.i] >= '1' && s.d[s.i] <= '9':
		s.digits()
	default:
		return nil, s.errf("malformed number")
	}
	if s.i < len(s.d) && s.d[s.i] == '.' {
		s.adv()
		if s.digits() == 0 {
			return nil, s.errf("malformed number: missing fraction digits")
		}
	}
	if s.i < len(s.d) && (s.d[s.i] == 'e' || s.d[s.i] == 'E') {
		s.adv()
		if s.i < len(s.d) && (s.d[s.i] == '+' || s.d[s.i] == '-') {
			s.adv()
		}
		if s.digits() == 0 {
			return nil, s.errf("malformed number: missing exponent digits")
		}
	}
	return ir.FromNumber(string(s.d[start:s.i])), nil
}

func (s *jsonScanner) digits() int {
	n := 0
	for s.i < len(s.d) && s.d[s.i] >= '0' && s.d[s.i] <= '9' {
		s.adv()
		n++
	}
	return n
}
