// Released under an MIT license. See LICENSE.

// Package num provides Brack's number type.
package num

import (
	"math"
	"strconv"

	"github.com/bracklang/brack/pkg/cell"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	v, ok := To(c)

	return ok && float64(*n) == float64(*v)
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return Format(float64(*n))
}

// Format returns the shortest decimal text that reads back as f.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// Parse returns the value of s if s is the text of a finite number.
func Parse(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// To returns the num in c, if c is a num.
func To(c cell.I) (*num, bool) {
	n, ok := c.(*num)

	return n, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = cell.Literal(&t)

	// The num type is a stringer.
	_ = cell.Stringer(&t)
}
