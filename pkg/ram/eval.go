// Released under an MIT license. See LICENSE.

package ram

import (
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/flow"
	"github.com/bracklang/brack/pkg/type/prog"
)

// Block runs the statements of p in a new scope of the current frame.
func (r *ram) Block(p *prog.T) (result cell.I, err error) {
	err = r.PushScope()
	if err != nil {
		return nil, err
	}

	defer func() {
		if perr := r.PopScope(); perr != nil && err == nil {
			err = perr
		}
	}()

	return r.Run(p)
}

// Execute runs the statements of p in a new frame.
// The frame is removed however p finishes.
func (r *ram) Execute(p *prog.T) (result cell.I, err error) {
	r.PushFrame()

	defer func() {
		if perr := r.PopFrame(); perr != nil && err == nil {
			err = perr
		}
	}()

	return r.Run(p)
}

// Name resolves c to a value and returns that value's printed form.
func (r *ram) Name(c cell.I) (string, error) {
	v, err := r.Value(c)
	if err != nil {
		return "", err
	}

	return cell.String(v), nil
}

// Run evaluates the statements of p in the current frame, in order.
// It stops at the first statement that produces a signal and returns it.
func (r *ram) Run(p *prog.T) (cell.I, error) {
	if p == nil {
		return nil, nil
	}

	for _, s := range p.Statements() {
		sig, err := r.Statement(s)
		if err != nil {
			return nil, err
		}

		if sig != nil {
			return sig, nil
		}
	}

	return nil, nil
}

// Statement evaluates s. The result is returned only if it is a signal.
func (r *ram) Statement(s *expr.T) (cell.I, error) {
	v, err := r.Value(s)
	if err != nil {
		return nil, err
	}

	if flow.Is(v) {
		return v, nil
	}

	return nil, nil
}

// Value resolves c.
//
// An expression is evaluated by dispatching its head, reduced to a name, to
// an operator with the remaining elements as raw arguments. Anything else is
// returned unchanged.
func (r *ram) Value(c cell.I) (cell.I, error) {
	e, ok := expr.To(c)
	if !ok {
		return c, nil
	}

	if e.Len() == 0 {
		return nil, fault.Arity("expression", 1, 0)
	}

	head := e.Head()

	var name string

	if expr.Is(head) {
		v, err := r.Value(head)
		if err != nil {
			return nil, err
		}

		name = cell.String(v)
	} else {
		name = cell.String(head)
	}

	return r.ops.Invoke(r, name, e.Args())
}
