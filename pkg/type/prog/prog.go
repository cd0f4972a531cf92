// Released under an MIT license. See LICENSE.

// Package prog provides Brack's program type, an ordered list of statements.
package prog

import (
	"strings"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/type/expr"
)

const name = "program"

// T (prog) is an ordered sequence of top-level statements.
type T struct {
	statements []*expr.T
}

type prog = T

// New creates a new program from statements.
func New(statements ...*expr.T) *prog {
	return &prog{statements: statements}
}

// Append adds statements to the end of the program p.
func (p *prog) Append(statements ...*expr.T) {
	p.statements = append(p.statements, statements...)
}

// Equal returns true if c is a program with equal statements.
func (p *prog) Equal(c cell.I) bool {
	o, ok := To(c)
	if !ok || len(o.statements) != len(p.statements) {
		return false
	}

	for i, s := range p.statements {
		if !s.Equal(o.statements[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of statements in the program p.
func (p *prog) Len() int {
	return len(p.statements)
}

// Literal returns the text of the program p, one statement per line.
func (p *prog) Literal() string {
	lines := make([]string, len(p.statements))
	for i, s := range p.statements {
		lines[i] = s.Literal()
	}

	return strings.Join(lines, "\n")
}

// Name returns the name of the prog type.
func (p *prog) Name() string {
	return name
}

// Statements returns the statements of the program p.
func (p *prog) Statements() []*expr.T {
	return p.statements
}

// String returns the text of the program p.
func (p *prog) String() string {
	return p.Literal()
}

// Is returns true if c is a program.
func Is(c cell.I) bool {
	_, ok := c.(*prog)

	return ok
}

// To returns the program in c, if c is a program.
func To(c cell.I) (*prog, bool) {
	p, ok := c.(*prog)

	return p, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t prog

	// The prog type is a cell.
	_ = cell.I(&t)

	// The prog type has a literal representation.
	_ = cell.Literal(&t)
}
