// Released under an MIT license. See LICENSE.

// Package expr provides Brack's expression type.
//
// An expression is an unevaluated, bracketed sequence of values. The first
// element names the operator, either directly or through a nested expression
// that evaluates to the name. The remaining elements are raw arguments.
package expr

import (
	"strings"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/type/str"
)

const name = "expression"

// T (expr) is a sequence of values.
type T struct {
	elements []cell.I
}

type expr = T

// New creates a new expression from elements.
func New(elements ...cell.I) *expr {
	return &expr{elements: elements}
}

// Append adds elements to the end of the expression e.
func (e *expr) Append(elements ...cell.I) {
	e.elements = append(e.elements, elements...)
}

// Args returns the raw arguments of the expression e.
func (e *expr) Args() []cell.I {
	if len(e.elements) == 0 {
		return nil
	}

	return e.elements[1:]
}

// Elements returns every element of the expression e.
func (e *expr) Elements() []cell.I {
	return e.elements
}

// Equal returns true if c is an expression with equal elements.
func (e *expr) Equal(c cell.I) bool {
	o, ok := To(c)
	if !ok || len(o.elements) != len(e.elements) {
		return false
	}

	for i, v := range e.elements {
		if !cell.Equal(v, o.elements[i]) {
			return false
		}
	}

	return true
}

// Head returns the element that names the operator, or nil if e is empty.
func (e *expr) Head() cell.I {
	if len(e.elements) == 0 {
		return nil
	}

	return e.elements[0]
}

// Len returns the number of elements in the expression e.
func (e *expr) Len() int {
	return len(e.elements)
}

// Literal returns the text representation of the expression e.
func (e *expr) Literal() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, v := range e.elements {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(Literal(v))
	}

	b.WriteByte(']')

	return b.String()
}

// Name returns the name of the expr type.
func (e *expr) Name() string {
	return name
}

// String returns the text of the expression e.
func (e *expr) String() string {
	return e.Literal()
}

// Is returns true if c is an expression.
func Is(c cell.I) bool {
	_, ok := c.(*expr)

	return ok
}

// Literal returns the text representation of c. Values without a literal
// representation are written as the quoted text of their printed form.
func Literal(c cell.I) string {
	if l, ok := c.(cell.Literal); ok {
		return l.Literal()
	}

	return str.Quote(cell.String(c))
}

// To returns the expression in c, if c is an expression.
func To(c cell.I) (*expr, bool) {
	e, ok := c.(*expr)

	return e, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t expr

	// The expr type is a cell.
	_ = cell.I(&t)

	// The expr type has a literal representation.
	_ = cell.Literal(&t)

	// The expr type is a stringer.
	_ = cell.Stringer(&t)
}
