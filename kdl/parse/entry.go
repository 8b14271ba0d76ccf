package parse

import (
	"fmt"

	"github.com/joshprk/jsonkdl/kdl"
	"github.com/joshprk/jsonkdl/kdl/token"
)

func (p *parser) entry(sep string) (*kdl.Entry, error) {
	e := &kdl.Entry{Fmt: &kdl.EntryFormat{Leading: sep}}
	t := p.peek()
	if t.Type == token.TLParen {
		ty, err := p.annotation()
		if err != nil {
			return nil, err
		}
		p.sep()
		return p.entryValue(e, ty)
	}

	// a property is an identifier directly followed by '='
	if t.Type == token.TIdent || t.Type == token.TString {
		mark := p.i
		p.i++
		if !p.eof() && p.peek().Type == token.TEquals {
			p.i = mark
			name, err := p.ident("property name")
			if err != nil {
				return nil, err
			}
			e.Name = name
			p.i++ // =
			var ty *kdl.Identifier
			if !p.eof() && p.peek().Type == token.TLParen {
				ty, err = p.annotation()
				if err != nil {
					return nil, err
				}
			}
			return p.entryValue(e, ty)
		}
		p.i = mark
	}
	return p.entryValue(e, nil)
}

func (p *parser) entryValue(e *kdl.Entry, ty *kdl.Identifier) (*kdl.Entry, error) {
	if p.eof() {
		return nil, fmt.Errorf("%w: expected value at end of input", ErrParse)
	}
	t := p.next()
	var v kdl.Value
	var err error
	switch t.Type {
	case token.TNumber:
		v = kdl.NumberValue(string(t.Bytes))
	case token.TString:
		s, uerr := kdl.UnquoteString(string(t.Bytes))
		if uerr != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrParse, uerr, t.Pos)
		}
		v = kdl.StringValue(s)
	case token.TKeyword:
		v, err = p.keywordValue(t)
	case token.TIdent:
		v, err = p.identValue(t)
	default:
		return nil, fmt.Errorf("%w: expected value, got %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	if err != nil {
		return nil, err
	}
	e.Type = ty
	e.Value = v
	e.Fmt.ValueRepr = string(t.Bytes)
	return e, nil
}

func (p *parser) keywordValue(t *token.Token) (kdl.Value, error) {
	if p.opts.version == kdl.V1 {
		return kdl.Value{}, fmt.Errorf("%w: %s is not a KDL 1 value %s", ErrParse, string(t.Bytes), t.Pos)
	}
	switch string(t.Bytes) {
	case "#null":
		return kdl.NullValue(), nil
	case "#true":
		return kdl.BoolValue(true), nil
	case "#false":
		return kdl.BoolValue(false), nil
	}
	// #inf, #-inf and #nan carry through as literal number text
	return kdl.NumberValue(string(t.Bytes)), nil
}

func (p *parser) identValue(t *token.Token) (kdl.Value, error) {
	s := string(t.Bytes)
	if p.opts.version == kdl.V1 {
		switch s {
		case "null":
			return kdl.NullValue(), nil
		case "true":
			return kdl.BoolValue(true), nil
		case "false":
			return kdl.BoolValue(false), nil
		}
		return kdl.Value{}, fmt.Errorf("%w: bare string %q is not a KDL 1 value %s", ErrParse, s, t.Pos)
	}
	switch s {
	case "null", "true", "false", "inf", "-inf", "nan":
		return kdl.Value{}, fmt.Errorf("%w: %q needs a # prefix %s", ErrParse, s, t.Pos)
	}
	return kdl.StringValue(s), nil
}
