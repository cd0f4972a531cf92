// Released under an MIT license. See LICENSE.

// Package reader reads Brack statements from text.
//
// A reader couples the state-function lexer to the recursive descent
// parser. Text is pulled from an io.Reader in chunks as the parser asks
// for tokens, so statements can be consumed one at a time from sources
// that are larger than memory.
package reader

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bracklang/brack/internal/common/struct/token"
	"github.com/bracklang/brack/internal/reader/lexer"
	"github.com/bracklang/brack/internal/reader/parser"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/prog"
)

const chunk = 4096

// T (reader) yields the statements of a source one at a time.
type T struct {
	buf  []byte
	err  error
	p    *parser.T
	rest []byte
	s    *lexer.T
	src  io.Reader
}

type reader = T

// New creates a reader for src. The label is used in error messages.
func New(label string, src io.Reader) *reader {
	r := &reader{
		buf: make([]byte, chunk),
		s:   lexer.New(label),
		src: src,
	}

	r.p = parser.New(r.item)

	return r
}

// FromString creates a reader for text.
func FromString(label, text string) *reader {
	return New(label, strings.NewReader(text))
}

// Parse reads every statement in text.
func Parse(label, text string) (*prog.T, error) {
	return FromString(label, text).Program()
}

// Text returns the text form of stmts, one statement per line.
func Text(stmts ...*expr.T) string {
	var b strings.Builder

	for _, s := range stmts {
		b.WriteString(s.Literal())
		b.WriteByte('\n')
	}

	return b.String()
}

// HasNext returns true if there is another statement to read.
// It reads ahead past whitespace, comments and any other text between
// statements but does not parse the statement itself.
func (r *reader) HasNext() bool {
	return r.p.More() || r.err != nil
}

// Next returns the next statement.
// It fails with fault.ErrNoStatement if there are no more statements.
func (r *reader) Next() (*expr.T, error) {
	if r.err != nil {
		return nil, r.err
	}

	s, err := r.p.Statement()
	if err != nil {
		if r.err != nil {
			return nil, r.err
		}

		return nil, err
	}

	return s, nil
}

// Program returns every remaining statement.
func (r *reader) Program() (*prog.T, error) {
	p, err := r.p.Parse()
	if r.err != nil {
		return nil, r.err
	}

	return p, err
}

func (r *reader) fill() bool {
	if r.src == nil {
		r.s.Close()

		return false
	}

	n, err := r.src.Read(r.buf)

	b := append(r.rest, r.buf[:n]...)
	b, r.rest = split(b)

	if len(b) > 0 {
		r.s.Scan(string(b))
	}

	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
		}

		if len(r.rest) > 0 {
			// A truncated rune is kept as it is.
			r.s.Scan(string(r.rest))
			r.rest = nil
		}

		r.s.Close()
		r.src = nil
	}

	return true
}

func (r *reader) item() *token.T {
	t := r.s.Token()

	for t == nil && r.fill() {
		t = r.s.Token()
	}

	return t
}

// split separates a trailing incomplete rune from b.
func split(b []byte) ([]byte, []byte) {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				break
			}

			return b[:i], append([]byte(nil), b[i:]...)
		}
	}

	return b, nil
}
