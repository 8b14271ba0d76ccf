// Package parse builds kdl documents from KDL text.
//
// Parsing is representation-preserving: identifier text, value text
// and surrounding trivia are captured into the document's format
// fields, so a parsed document prints back out byte for byte. The
// revision differences between KDL 1 and KDL 2 (bare versus # prefixed
// keywords, identifier strings) are selected with [WithVersion].
//
// Slashdash comments, raw strings and multiline strings are not
// recognized.
package parse

import (
	"fmt"
	"strings"

	"github.com/joshprk/jsonkdl/kdl"
	"github.com/joshprk/jsonkdl/kdl/token"
)

func Parse(d []byte, opts ...ParseOption) (*kdl.Document, error) {
	pOpts := &parseOpts{version: kdl.DefaultVersion}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	return p.document(true)
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) eof() bool {
	return p.i >= len(p.toks)
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	p.i++
	return t
}

// trivia consumes whitespace, comments and newlines, returning their
// concatenated text.
func (p *parser) trivia() string {
	var b strings.Builder
	for !p.eof() {
		t := p.peek()
		switch t.Type {
		case token.TWhitespace, token.TComment, token.TNewline:
			b.Write(t.Bytes)
			p.i++
		default:
			return b.String()
		}
	}
	return b.String()
}

// sep consumes whitespace and comments but stops at newlines, which
// terminate nodes.
func (p *parser) sep() string {
	var b strings.Builder
	for !p.eof() {
		t := p.peek()
		switch t.Type {
		case token.TWhitespace, token.TComment:
			b.Write(t.Bytes)
			p.i++
		default:
			return b.String()
		}
	}
	return b.String()
}

func (p *parser) document(top bool) (*kdl.Document, error) {
	doc := kdl.NewDocument()
	doc.Fmt = &kdl.DocumentFormat{}
	for {
		lead := p.trivia()
		if p.eof() {
			if !top {
				return nil, fmt.Errorf("%w: missing }", ErrParse)
			}
			doc.Fmt.Trailing = lead
			return doc, nil
		}
		if p.peek().Type == token.TRCurl {
			if top {
				return nil, fmt.Errorf("%w: unexpected } %s", ErrParse, p.peek().Pos)
			}
			// caller consumes the brace
			doc.Fmt.Trailing = lead
			return doc, nil
		}
		n, err := p.node(lead)
		if err != nil {
			return nil, err
		}
		doc.Push(n)
	}
}

func (p *parser) node(lead string) (*kdl.Node, error) {
	var ty *kdl.Identifier
	if p.peek().Type == token.TLParen {
		id, err := p.annotation()
		if err != nil {
			return nil, err
		}
		ty = id
		p.sep()
	}
	name, err := p.ident("node name")
	if err != nil {
		return nil, err
	}
	n := &kdl.Node{
		Name: *name,
		Type: ty,
		Fmt:  &kdl.NodeFormat{Leading: lead},
	}
	return n, p.nodeRest(n)
}

func (p *parser) nodeRest(n *kdl.Node) error {
	for {
		sep := p.sep()
		if p.eof() {
			n.Fmt.Trailing = sep
			return nil
		}
		t := p.peek()
		switch t.Type {
		case token.TNewline, token.TSemicolon:
			p.i++
			n.Fmt.Trailing = sep + string(t.Bytes)
			return nil
		case token.TRCurl:
			n.Fmt.Trailing = sep
			return nil
		case token.TLCurl:
			if n.Children != nil {
				return fmt.Errorf("%w: second children block %s", ErrParse, t.Pos)
			}
			p.i++
			n.Fmt.BeforeChildren = sep
			kids, err := p.document(false)
			if err != nil {
				return err
			}
			p.i++ // the closing brace, document stopped on it
			n.Children = kids
		default:
			if n.Children != nil {
				return fmt.Errorf("%w: entry after children block %s", ErrParse, t.Pos)
			}
			e, err := p.entry(sep)
			if err != nil {
				return err
			}
			n.Push(e)
		}
	}
}

func (p *parser) ident(what string) (*kdl.Identifier, error) {
	if p.eof() {
		return nil, fmt.Errorf("%w: expected %s at end of input", ErrParse, what)
	}
	t := p.next()
	switch t.Type {
	case token.TIdent:
		s := string(t.Bytes)
		if !kdl.BareIdentOK(s, p.opts.version) {
			return nil, fmt.Errorf("%w: %q cannot be a bare %s %s", ErrParse, s, what, t.Pos)
		}
		return &kdl.Identifier{Value: s, Repr: s}, nil
	case token.TString:
		s, err := kdl.UnquoteString(string(t.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrParse, err, t.Pos)
		}
		return &kdl.Identifier{Value: s, Repr: string(t.Bytes)}, nil
	}
	return nil, fmt.Errorf("%w: expected %s, got %q %s", ErrParse, what, string(t.Bytes), t.Pos)
}

func (p *parser) annotation() (*kdl.Identifier, error) {
	p.next() // (
	p.sep()
	id, err := p.ident("type annotation")
	if err != nil {
		return nil, err
	}
	p.sep()
	if p.eof() {
		return nil, fmt.Errorf("%w: expected ) at end of input", ErrParse)
	}
	if t := p.next(); t.Type != token.TRParen {
		return nil, fmt.Errorf("%w: expected ), got %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return id, nil
}
