package kdl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrBadEscape    = errors.New("bad string escape")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadUTF8      = errors.New("invalid utf8")
)

// QuoteString renders s as a double-quoted KDL string. Only escapes
// valid under both spec revisions are emitted.
func QuoteString(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u', '{')
				d = strconv.AppendUint(d, uint64(r), 16)
				d = append(d, '}')
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// UnquoteString decodes a double-quoted KDL string including its
// surrounding quotes. Both revisions' escapes are accepted (\s is a
// KDL 2 addition).
func UnquoteString(v string) (string, error) {
	d := []byte(v)
	if len(d) < 2 || d[0] != '"' {
		return "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", ErrBadUTF8
		}
		i += sz
		switch r {
		case '"':
			if i != len(d) {
				return "", fmt.Errorf("%w: trailing %q", ErrBadEscape, string(d[i:]))
			}
			return b.String(), nil
		case '\\':
			if i >= len(d) {
				return "", ErrUnterminated
			}
			e, esz := utf8.DecodeRune(d[i:])
			i += esz
			switch e {
			case '"', '\\', '/':
				b.WriteRune(e)
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 's':
				b.WriteByte(' ')
			case 'u':
				if i >= len(d) || d[i] != '{' {
					return "", ErrBadUnicode
				}
				i++
				j := i
				for j < len(d) && d[j] != '}' {
					j++
				}
				if j >= len(d) || j == i || j-i > 6 {
					return "", ErrBadUnicode
				}
				cp, err := strconv.ParseUint(string(d[i:j]), 16, 32)
				if err != nil || !utf8.ValidRune(rune(cp)) {
					return "", ErrBadUnicode
				}
				b.WriteRune(rune(cp))
				i = j + 1
			default:
				return "", fmt.Errorf("%w: \\%c", ErrBadEscape, e)
			}
		default:
			b.WriteRune(r)
		}
	}
	return "", ErrUnterminated
}

// BareIdentOK reports whether value can print as a bare identifier
// under version v. The check is conservative: anything questionable
// gets quoted instead, which is valid in both revisions.
func BareIdentOK(value string, v Version) bool {
	if value == "" {
		return false
	}
	switch value {
	case "true", "false", "null":
		return false
	}
	if v == V2 {
		switch value {
		case "inf", "-inf", "nan":
			return false
		}
	}
	if looksNumeric(value) {
		return false
	}
	for _, r := range value {
		if !identRune(r) {
			return false
		}
	}
	return true
}

func identRune(r rune) bool {
	if r <= 0x20 || r == 0x7f {
		return false
	}
	switch r {
	case '"', '\\', '/', '(', ')', '{', '}', '[', ']', '<', '>', ';', '=', ',', '#':
		return false
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	return true
}

// looksNumeric reports whether s could be confused with the start of a
// number literal. A lone sign is fine ("-" is a legal identifier); a
// sign or dot followed by a digit is not.
func looksNumeric(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}
