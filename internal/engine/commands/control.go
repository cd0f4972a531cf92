// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
	"github.com/bracklang/brack/pkg/type/flow"
	"github.com/bracklang/brack/pkg/type/prog"
	"github.com/bracklang/brack/pkg/type/str"
)

func block(r *ram.T, args []cell.I) (cell.I, error) {
	p, err := reader.Parse("block", cell.String(args[0]))
	if err != nil {
		return nil, err
	}

	return r.Block(p)
}

func breaking(_ *ram.T, _ []cell.I) (cell.I, error) {
	return flow.NewBreak(), nil
}

func continuing(_ *ram.T, _ []cell.I) (cell.I, error) {
	return flow.NewContinue(), nil
}

// [if condition "then" "else"?]
func ifThenElse(r *ram.T, args []cell.I) (cell.I, error) {
	v, err := validate.Fixed("if", args, 2, 3)
	if err != nil {
		return nil, err
	}

	for i, c := range v[1:] {
		if !str.Is(c) {
			return nil, fault.Type("if", i+2, "text", cell.Name(c))
		}
	}

	branch := 1
	if !Truth(v[0]) {
		branch = 2
	}

	if branch >= len(v) {
		return nil, nil
	}

	p, err := reader.Parse("if", cell.String(v[branch]))
	if err != nil {
		return nil, err
	}

	return r.Block(p)
}

func returning(_ *ram.T, args []cell.I) (cell.I, error) {
	v, err := validate.Fixed("return", args, 0, 1)
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return flow.NewReturn(nil), nil
	}

	return flow.NewReturn(v[0]), nil
}

// [while "condition" "body"]
func while(r *ram.T, args []cell.I) (cell.I, error) {
	cond, err := reader.Parse("while", cell.String(args[0]))
	if err != nil {
		return nil, err
	}

	body, err := reader.Parse("while", cell.String(args[1]))
	if err != nil {
		return nil, err
	}

	for {
		ok, err := test(r, cond)
		if err != nil || !ok {
			return nil, err
		}

		result, err := r.Block(body)
		if err != nil {
			return nil, err
		}

		switch {
		case flow.Is(result, flow.Break):
			return nil, nil
		case flow.Is(result, flow.Return):
			return result, nil
		}
	}
}

// The value of a condition is the value of its last statement.
func test(r *ram.T, cond *prog.T) (bool, error) {
	var v cell.I

	for _, s := range cond.Statements() {
		var err error

		v, err = r.Value(s)
		if err != nil {
			return false, err
		}
	}

	return Truth(v), nil
}
