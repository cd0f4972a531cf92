// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for Brack.
package parser

import (
	"errors"

	"github.com/bracklang/brack/internal/common/struct/token"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/prog"
	"github.com/bracklang/brack/pkg/type/str"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
// The item function returns nil when there are no more tokens.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// More returns true if there is another statement to parse. Anything
// between statements is discarded. A stray ']' or a lexical error counts
// as a statement so that Statement can report it.
func (p *T) More() bool {
	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('[', ']', token.Error) {
			return true
		}

		p.consume()
	}

	return false
}

// Parse parses every remaining statement.
func (p *T) Parse() (*prog.T, error) {
	program := prog.New()

	for p.More() {
		s, err := p.Statement()
		if err != nil {
			return nil, err
		}

		program.Append(s)
	}

	return program, nil
}

// Statement parses the next statement.
// It fails with fault.ErrNoStatement if there are no more statements.
func (p *T) Statement() (s *expr.T, err error) {
	if !p.More() {
		return nil, fault.NoStatement()
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		s = nil

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = fault.Malformed("", r.Error())
		case string:
			err = fault.Malformed("", r)
		default:
			err = fault.Malformed("", "unexpected error")
		}
	}()

	return p.statement(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <statement> ::= '[' <element>* ']' .
func (p *T) statement() *expr.T {
	open := p.consume()

	if open.Is(']') {
		panic(fault.Malformed(open.Source().String(), "unexpected ']'"))
	}

	if open.Is(token.Error) {
		panic(fault.Malformed(open.Source().String(), open.Value()))
	}

	e := expr.New()

	for {
		t := p.peek()

		switch {
		case t == nil:
			panic(fault.Malformed(open.Source().String(), "unterminated expression"))
		case t.Is(']'):
			p.consume()

			return e
		default:
			e.Append(p.element())
		}
	}
}

// <element> ::= <statement> | Word | Quoted .
func (p *T) element() cell.I {
	t := p.peek()

	switch {
	case t.Is('['):
		return p.statement()
	case t.Is(token.Quoted):
		p.consume()

		v := t.Value()

		return str.New(str.Unescape(v[1 : len(v)-1]))
	case t.Is(token.Word):
		p.consume()

		return Word(t.Value())
	}

	p.consume()

	panic(fault.Malformed(t.Source().String(), t.Value()))
}

// Word converts the text of a bare token to a number, if it is one, or text.
func Word(s string) cell.I {
	s = str.Unescape(s)

	if f, ok := num.Parse(s); ok {
		return num.New(f)
	}

	return str.New(s)
}
