package token

import "fmt"

type TokenType int

const (
	TWhitespace TokenType = iota
	TNewline
	TComment
	TIdent
	TString
	TNumber
	TKeyword
	TEquals
	TSemicolon
	TLParen
	TRParen
	TLCurl
	TRCurl
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWhitespace: "TWhitespace",
		TNewline:    "TNewline",
		TComment:    "TComment",
		TIdent:      "TIdent",
		TString:     "TString",
		TNumber:     "TNumber",
		TKeyword:    "TKeyword",
		TEquals:     "TEquals",
		TSemicolon:  "TSemicolon",
		TLParen:     "TLParen",
		TRParen:     "TRParen",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Trivia reports whether the token is inter-element trivia rather than
// document structure. Newlines are not trivia: they terminate nodes.
func (t *Token) Trivia() bool {
	switch t.Type {
	case TWhitespace, TComment:
		return true
	}
	return false
}
