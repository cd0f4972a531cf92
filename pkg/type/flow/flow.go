// Released under an MIT license. See LICENSE.

// Package flow provides Brack's flow-control signals.
//
// A signal is a sentinel result. Operators produce them and the evaluator
// stops running statements and hands the signal to its caller unchanged.
package flow

import (
	"github.com/bracklang/brack/pkg/cell"
)

// Kind identifies a signal.
type Kind uint8

// Signal kinds.
const (
	Return Kind = iota + 1
	Break
	Continue
)

// String returns the name of the signal kind k.
func (k Kind) String() string {
	switch k {
	case Return:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	}

	return "unknown"
}

// T (flow) is a flow-control signal. Only a return carries a payload.
type T struct {
	kind    Kind
	payload cell.I
}

type flow = T

//nolint:gochecknoglobals
var (
	breaking   = &flow{kind: Break}
	continuing = &flow{kind: Continue}
)

// NewBreak returns the break signal.
func NewBreak() cell.I {
	return breaking
}

// NewContinue returns the continue signal.
func NewContinue() cell.I {
	return continuing
}

// NewReturn creates a return signal carrying v. The payload may be nil.
func NewReturn(v cell.I) cell.I {
	return &flow{kind: Return, payload: v}
}

// Equal returns true if c is a signal of the same kind with an equal payload.
func (f *flow) Equal(c cell.I) bool {
	o, ok := To(c)

	return ok && o.kind == f.kind && cell.Equal(o.payload, f.payload)
}

// Kind returns the kind of the signal f.
func (f *flow) Kind() Kind {
	return f.kind
}

// Name returns the name of the signal's kind.
func (f *flow) Name() string {
	return f.kind.String()
}

// Payload returns the value carried by a return signal.
func (f *flow) Payload() cell.I {
	return f.payload
}

// String returns the printed form of the signal's payload.
func (f *flow) String() string {
	return cell.String(f.payload)
}

// Is returns true if c is a signal of one of the kinds ks, or of any kind
// when ks is empty.
func Is(c cell.I, ks ...Kind) bool {
	f, ok := To(c)
	if !ok {
		return false
	}

	if len(ks) == 0 {
		return true
	}

	for _, k := range ks {
		if f.kind == k {
			return true
		}
	}

	return false
}

// To returns the signal in c, if c is a signal.
func To(c cell.I) (*flow, bool) {
	f, ok := c.(*flow)

	return f, ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t flow

	// The flow type is a cell.
	_ = cell.I(&t)

	// The flow type is a stringer.
	_ = cell.Stringer(&t)
}
