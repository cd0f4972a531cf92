// Released under an MIT license. See LICENSE.

// Package fault defines the kinds of failure reported by Brack.
//
// Every error produced by the core is a *T whose kind can be matched with
// errors.Is against one of the sentinel errors below.
package fault

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrArity             = errors.New("wrong number of arguments")
	ErrDuplicateOperator = errors.New("duplicate operator")
	ErrMalformed         = errors.New("malformed source")
	ErrNoFrame           = errors.New("no active frame")
	ErrNoStatement       = errors.New("no statement")
	ErrOperatorNotFound  = errors.New("operator not found")
	ErrType              = errors.New("type mismatch")
	ErrUndeclared        = errors.New("undeclared")
)

// Namespaces.
const (
	Global   = "global"
	Local    = "local"
	Operator = "operator"
	Script   = "script"
)

// T (fault) is a failure of a particular kind.
type T struct {
	Kind  error  // One of the Err* sentinels.
	Space string // Namespace of Key, if any.
	Key   string // Offending name, if any.
	Text  string // Description.
}

type fault = T

// Error returns the text of the fault f.
func (f *fault) Error() string {
	return f.Text
}

// Unwrap returns the kind of the fault f so errors.Is can match it.
func (f *fault) Unwrap() error {
	return f.Kind
}

// Arity reports that who expected want arguments but was passed got.
func Arity(who string, want, got int) error {
	return &fault{
		Kind:  ErrArity,
		Space: Operator,
		Key:   who,
		Text:  fmt.Sprintf("%s: expected %s, passed %d", who, Count(want, "argument", "s"), got),
	}
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Duplicate reports that an operator was registered twice.
func Duplicate(name string) error {
	return &fault{
		Kind:  ErrDuplicateOperator,
		Space: Operator,
		Key:   name,
		Text:  "operator " + name + " is already defined",
	}
}

// Malformed reports a problem with source text or records at where.
func Malformed(where, msg string) error {
	text := msg
	if where != "" {
		text = where + ": " + msg
	}

	return &fault{Kind: ErrMalformed, Text: text}
}

// NoFrame reports that what was needed but none was active.
func NoFrame(what string) error {
	return &fault{Kind: ErrNoFrame, Text: "no active " + what}
}

// NoStatement reports a request for a statement after the last one.
func NoStatement() error {
	return &fault{Kind: ErrNoStatement, Text: "no more statements"}
}

// NotFound reports a dispatch on an unregistered operator.
func NotFound(name string) error {
	return &fault{
		Kind:  ErrOperatorNotFound,
		Space: Operator,
		Key:   name,
		Text:  "operator not found: " + name,
	}
}

// Type reports that argument n of who was a have where a want was expected.
func Type(who string, n int, want, have string) error {
	return &fault{
		Kind:  ErrType,
		Space: Operator,
		Key:   who,
		Text:  fmt.Sprintf("%s: argument %d: expected %s, got %s", who, n, want, have),
	}
}

// Undeclared reports that name has no binding in space.
func Undeclared(space, name string) error {
	return &fault{
		Kind:  ErrUndeclared,
		Space: space,
		Key:   name,
		Text:  space + " " + name + " is undeclared",
	}
}
