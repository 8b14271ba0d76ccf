package token

import "unicode/utf8"

// number scans a KDL number literal at the start of d and returns its
// byte length. Decimal, hex (0x), octal (0o) and binary (0b) forms are
// recognized, with underscore separators after the first digit of any
// digit run. Text that starts numeric but does not finish as a number
// (such as "1x" or "1.") is an error, never an identifier.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i < len(d) && d[i] == '.' {
		// numbers need an integer part
		return 0, ErrNumber
	}
	if i+1 < len(d) && d[i] == '0' {
		switch d[i+1] {
		case 'x', 'X':
			return radix(d, i+2, 16)
		case 'o', 'O':
			return radix(d, i+2, 8)
		case 'b', 'B':
			return radix(d, i+2, 2)
		}
	}
	digits := decDigits(d[i:])
	if digits == 0 {
		return 0, ErrNumber
	}
	i += digits
	i += fract(d[i:])
	i += exp(d[i:])
	if midLiteral(d[i:]) {
		return 0, ErrNumber
	}
	return i, nil
}

func numberStart(d []byte) bool {
	i := 0
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	if i < len(d) && d[i] == '.' {
		i++
	}
	return i < len(d) && asciiDigit(d[i])
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func decDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if asciiDigit(d[i]) || (d[i] == '_' && i > 0) {
			i++
			continue
		}
		return i
	}
	return i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' || !asciiDigit(d[1]) {
		return 0
	}
	return 1 + decDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != 'e' && d[0] != 'E' {
		return 0
	}
	i := 1
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	if i >= len(d) || !asciiDigit(d[i]) {
		return 0
	}
	return i + decDigits(d[i:])
}

func radix(d []byte, start, base int) (int, error) {
	i, n := start, 0
	for i < len(d) {
		c := d[i]
		if c == '_' && n > 0 {
			i++
			continue
		}
		if digitVal(c) < base {
			n++
			i++
			continue
		}
		break
	}
	if n == 0 {
		return 0, ErrNumber
	}
	if midLiteral(d[i:]) {
		return 0, ErrNumber
	}
	return i, nil
}

func digitVal(c byte) int {
	switch {
	case asciiDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

// midLiteral reports whether d begins with a rune that would continue a
// bare identifier, which after a complete number means the text was
// never a number at all.
func midLiteral(d []byte) bool {
	if len(d) == 0 {
		return false
	}
	r, sz := utf8.DecodeRune(d)
	if r == utf8.RuneError && sz == 1 {
		return false
	}
	return identRune(r)
}
