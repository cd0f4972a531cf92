// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all Brack values.
package cell

import (
	"fmt"
)

// I (cell) is the basic unit of storage in Brack.
type I interface {
	Equal(c I) bool
	Name() string
}

// Literal is any value that can be written in Brack's text format.
type Literal interface {
	Literal() string
}

type Stringer = fmt.Stringer

// Equal returns true if a and b are both nil or a is equal to b.
func Equal(a, b I) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(b)
}

// Name returns the type name for c. The name of nil is "nothing".
func Name(c I) string {
	if c == nil {
		return "nothing"
	}

	return c.Name()
}

// String returns the printed form of c. This is the form used whenever a
// value is needed as a name. Nil prints as the empty string and values that
// are not stringers print as their type name.
func String(c I) string {
	if c == nil {
		return ""
	}

	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	return c.Name()
}
