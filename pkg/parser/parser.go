// Package parser turns a stream of tokens into the sequence of top-level
// Values a source file represents, including the reader-macro rewrites
// for quote/quasiquote/unquote/unquote-splicing.
package parser

import (
	"fmt"
	"strconv"

	"lwhlisp/pkg/tokenizer"
	"lwhlisp/pkg/types"
)

// Diagnostic re-exports the tokenizer's diagnostic shape so callers only
// need to import one package for error reporting.
type Diagnostic = tokenizer.Diagnostic

// Parser consumes tokens from a Lexer and builds Values.
type Parser struct {
	lex         *tokenizer.Lexer
	peeked      *tokenizer.Token
	diagnostics []tokenizer.Diagnostic
}

func New(src string) *Parser {
	return &Parser{lex: tokenizer.New(src)}
}

// Parse reads every top-level form in src, returning as many as could be
// recovered and every diagnostic encountered along the way. After a
// malformed expression, reading resumes at the token following the point
// of failure, so a single bad expression does not swallow the rest of the
// file; tokens left over from the malformed form are read as top-level
// forms of their own.
func Parse(src string) ([]types.Value, []Diagnostic) {
	p := New(src)
	var values []types.Value
	for {
		tok := p.peek()
		if tok.Type == tokenizer.EOF {
			break
		}
		v, ok := p.readExpr()
		if ok {
			values = append(values, v)
		}
	}
	p.diagnostics = append(p.diagnostics, p.lex.Diagnostics()...)
	return values, p.diagnostics
}

func (p *Parser) errorf(span tokenizer.Span, format string, args ...interface{}) {
	p.diagnostics = append(p.diagnostics, tokenizer.Diagnostic{Span: span, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) peek() tokenizer.Token {
	if p.peeked == nil {
		t := p.lex.Next()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *Parser) next() tokenizer.Token {
	t := p.peek()
	p.peeked = nil
	return t
}

// readExpr reads one complete expression. ok is false if the expression
// was malformed and nothing usable was produced (a diagnostic has already
// been recorded).
func (p *Parser) readExpr() (types.Value, bool) {
	tok := p.next()
	switch tok.Type {
	case tokenizer.NUMBER:
		return parseNumber(tok.Value), true
	case tokenizer.SYMBOL:
		return types.Symbol(tok.Value), true
	case tokenizer.STRING:
		return types.String(tok.Value), true
	case tokenizer.LPAREN:
		return p.readList(tok)
	case tokenizer.RPAREN:
		p.errorf(tok.Span, "unexpected %q", ")")
		return nil, false
	case tokenizer.DOT:
		p.errorf(tok.Span, "unexpected %q", ".")
		return nil, false
	case tokenizer.QUOTE:
		return p.readReaderMacro(tok, "quote")
	case tokenizer.QUASIQUOTE:
		return p.readReaderMacro(tok, "quasiquote")
	case tokenizer.UNQUOTE:
		return p.readReaderMacro(tok, "unquote")
	case tokenizer.UNQUOTE_SPLICING:
		return p.readReaderMacro(tok, "unquote-splicing")
	case tokenizer.EOF:
		p.errorf(tok.Span, "unexpected end of input")
		return nil, false
	default:
		p.errorf(tok.Span, "unexpected token")
		return nil, false
	}
}

// readReaderMacro implements the pure parse-time rewrites 'x -> (quote x),
// `x -> (quasiquote x), ,x -> (unquote x), ,@x -> (unquote-splicing x).
// These carry no evaluator-level meaning; whatever user code binds those
// symbols decides what they do.
func (p *Parser) readReaderMacro(tok tokenizer.Token, name string) (types.Value, bool) {
	inner, ok := p.readExpr()
	if !ok {
		return nil, false
	}
	return types.NewPair(types.Symbol(name), types.NewPair(inner, types.Nil)), true
}

// readList reads the contents of a parenthesized form after the opening
// paren has been consumed: ( e1 e2 ... en [ . etail ] ).
func (p *Parser) readList(open tokenizer.Token) (types.Value, bool) {
	var elements []types.Value
	var tail types.Value = types.Nil

	for {
		tok := p.peek()
		switch tok.Type {
		case tokenizer.RPAREN:
			p.next()
			return types.DottedSliceToList(elements, tail), true
		case tokenizer.EOF:
			p.errorf(open.Span, "unclosed %q", "(")
			return types.DottedSliceToList(elements, tail), false
		case tokenizer.DOT:
			p.next()
			t, ok := p.readExpr()
			if !ok {
				return nil, false
			}
			tail = t
			closeTok := p.next()
			if closeTok.Type != tokenizer.RPAREN {
				p.errorf(closeTok.Span, "expected %q after dotted tail", ")")
				return types.DottedSliceToList(elements, tail), false
			}
			return types.DottedSliceToList(elements, tail), true
		default:
			v, ok := p.readExpr()
			if !ok {
				return nil, false
			}
			elements = append(elements, v)
		}
	}
}

func parseNumber(text string) types.Number {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return types.Number(0)
	}
	return types.Number(f)
}
