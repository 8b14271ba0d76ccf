package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst. Token positions index
// into src. Line continuations (backslash through end of line) come
// back as whitespace, so downstream never sees the swallowed newline.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	i, n := 0, len(src)
	if n >= 3 && src[0] == 0xef && src[1] == 0xbb && src[2] == 0xbf {
		i = 3 // byte order mark
	}
	for i < n {
		ty, sz, err := tokenizeOne(src, i, pd)
		if err != nil {
			return dst, err
		}
		dst = append(dst, Token{
			Type:  ty,
			Pos:   pd.Pos(i),
			Bytes: src[i : i+sz],
		})
		i += sz
	}
	return dst, nil
}

func tokenizeOne(d []byte, i int, pd *PosDoc) (TokenType, int, error) {
	switch d[i] {
	case '\n':
		return TNewline, 1, nil
	case '\r':
		if i+1 < len(d) && d[i+1] == '\n' {
			return TNewline, 2, nil
		}
		return TNewline, 1, nil
	case ' ', '\t':
		return TWhitespace, whitespace(d[i:]), nil
	case ';':
		return TSemicolon, 1, nil
	case '=':
		return TEquals, 1, nil
	case '(':
		return TLParen, 1, nil
	case ')':
		return TRParen, 1, nil
	case '{':
		return TLCurl, 1, nil
	case '}':
		return TRCurl, 1, nil
	case '"':
		sz, err := quoted(d[i:])
		if err != nil {
			return 0, 0, NewTokenizeErr(err, pd.Pos(i))
		}
		return TString, sz, nil
	case '/':
		return comment(d, i, pd)
	case '\\':
		sz, err := continuation(d, i, pd)
		if err != nil {
			return 0, 0, err
		}
		return TWhitespace, sz, nil
	case '#':
		sz, err := keyword(d, i, pd)
		if err != nil {
			return 0, 0, err
		}
		return TKeyword, sz, nil
	}
	if numberStart(d[i:]) {
		sz, err := number(d[i:])
		if err != nil {
			return 0, 0, NewTokenizeErr(err, pd.Pos(i))
		}
		return TNumber, sz, nil
	}
	r, rsz := utf8.DecodeRune(d[i:])
	if r == utf8.RuneError && rsz == 1 {
		return 0, 0, NewTokenizeErr(ErrBadUTF8, pd.Pos(i))
	}
	if unicode.IsSpace(r) {
		return TWhitespace, whitespace(d[i:]), nil
	}
	if identRune(r) {
		return TIdent, ident(d[i:]), nil
	}
	return 0, 0, UnexpectedErr(fmt.Sprintf("%q", r), pd.Pos(i))
}

// whitespace scans horizontal whitespace, ascii or unicode, stopping at
// newlines.
func whitespace(d []byte) int {
	i := 0
	for i < len(d) {
		switch d[i] {
		case ' ', '\t':
			i++
			continue
		case '\n', '\r':
			return i
		}
		r, sz := utf8.DecodeRune(d[i:])
		if !unicode.IsSpace(r) {
			return i
		}
		i += sz
	}
	return i
}

// quoted scans a double-quoted string including both quotes. Escape
// validity is checked later at unquote time; here only the extent
// matters. Embedded newlines pass through.
func quoted(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func comment(d []byte, i int, pd *PosDoc) (TokenType, int, error) {
	if i+1 >= len(d) {
		return 0, 0, UnexpectedErr("/", pd.Pos(i))
	}
	switch d[i+1] {
	case '/':
		j := i + 2
		for j < len(d) && d[j] != '\n' && d[j] != '\r' {
			j++
		}
		return TComment, j - i, nil
	case '*':
		j, depth := i+2, 1
		for j < len(d) && depth > 0 {
			switch {
			case j+1 < len(d) && d[j] == '/' && d[j+1] == '*':
				depth++
				j += 2
			case j+1 < len(d) && d[j] == '*' && d[j+1] == '/':
				depth--
				j += 2
			default:
				j++
			}
		}
		if depth > 0 {
			return 0, 0, NewTokenizeErr(ErrUnterminated, pd.Pos(i))
		}
		return TComment, j - i, nil
	case '-':
		return 0, 0, NewTokenizeErr(fmt.Errorf("%w: slashdash comment", ErrUnsupported), pd.Pos(i))
	}
	return 0, 0, UnexpectedErr("/", pd.Pos(i))
}

// continuation scans a backslash line continuation: optional trailing
// whitespace and line comment, then the newline (or end of input).
func continuation(d []byte, i int, pd *PosDoc) (int, error) {
	j := i + 1
	j += whitespace(d[j:])
	if j+1 < len(d) && d[j] == '/' && d[j+1] == '/' {
		for j < len(d) && d[j] != '\n' && d[j] != '\r' {
			j++
		}
	}
	if j >= len(d) {
		return j - i, nil
	}
	switch d[j] {
	case '\n':
		return j - i + 1, nil
	case '\r':
		if j+1 < len(d) && d[j+1] == '\n' {
			return j - i + 2, nil
		}
		return j - i + 1, nil
	}
	return 0, ExpectedErr("newline after line continuation", pd.Pos(j))
}

func keyword(d []byte, i int, pd *PosDoc) (int, error) {
	j := i + 1
	if j < len(d) && d[j] == '"' {
		return 0, NewTokenizeErr(fmt.Errorf("%w: raw string", ErrUnsupported), pd.Pos(i))
	}
	if j < len(d) && d[j] == '-' {
		j++
	}
	for j < len(d) && d[j] >= 'a' && d[j] <= 'z' {
		j++
	}
	switch string(d[i:j]) {
	case "#null", "#true", "#false", "#inf", "#-inf", "#nan":
		return j - i, nil
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w: %s", ErrKeyword, string(d[i:j])), pd.Pos(i))
}

func ident(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i
		}
		if !identRune(r) {
			return i
		}
		i += sz
	}
	return i
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
