// Released under an MIT license. See LICENSE.

// Package script provides Brack's user-defined procedures.
package script

import (
	"fmt"
	"log/slog"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/memory/local"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/prog"
	"github.com/bracklang/brack/pkg/type/str"
)

// Machine is what a script needs from the runtime to execute.
type Machine interface {
	Name(c cell.I) (string, error)
	PopFrame() error
	PushFrame() *local.T
	Run(p *prog.T) (cell.I, error)
}

// T (script) is an immutable, named-parameter procedure.
type T struct {
	body   *prog.T
	params []string
}

type script = T

// New creates a script with the parameter names params and the body body.
func New(params []string, body *prog.T) *script {
	if body == nil {
		body = prog.New()
	}

	return &script{
		body:   body,
		params: append([]string(nil), params...),
	}
}

// Body returns the statements of the script s.
func (s *script) Body() *prog.T {
	return s.body
}

// Execute runs the script s with args bound to its parameters.
//
// Each argument is resolved to a name in the caller's frame. The resulting
// text is bound as a number when it reads as one and as text otherwise. The
// body then runs in a fresh frame that holds only those bindings. The frame
// is removed however the body finishes and the body's signal, if any, is
// returned unchanged.
func (s *script) Execute(m Machine, args []cell.I) (result cell.I, err error) {
	if len(args) != len(s.params) {
		return nil, fault.Arity("script", len(s.params), len(args))
	}

	values := make([]cell.I, len(args))

	for i, a := range args {
		text, err := m.Name(a)
		if err != nil {
			return nil, err
		}

		if f, ok := num.Parse(text); ok {
			values[i] = num.New(f)
		} else {
			values[i] = str.New(text)
		}
	}

	slog.Debug("execute script", slog.Int("params", len(s.params)))

	frame := m.PushFrame()

	defer func() {
		if perr := m.PopFrame(); perr != nil && err == nil {
			err = perr
		}
	}()

	for i, p := range s.params {
		if err := frame.Set(p, values[i]); err != nil {
			return nil, err
		}
	}

	return m.Run(s.body)
}

// Param returns the name of parameter i.
func (s *script) Param(i int) (string, error) {
	if i < 0 || i >= len(s.params) {
		return "", fmt.Errorf("script has %s: no parameter %d: %w",
			fault.Count(len(s.params), "parameter", "s"), i, fault.ErrArity)
	}

	return s.params[i], nil
}

// Params returns a copy of the parameter names of the script s.
func (s *script) Params() []string {
	return append([]string(nil), s.params...)
}
