// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
	"github.com/bracklang/brack/pkg/script"
	"github.com/bracklang/brack/pkg/type/flow"
)

// [call name arg ...] runs a script. A returned value is unwrapped.
func call(r *ram.T, args []cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic("call", args, 1, 1)
	if err != nil {
		return nil, err
	}

	result, err := r.ExecuteScript(v[0], rest)
	if err != nil {
		return nil, err
	}

	if f, ok := flow.To(result); ok {
		if f.Kind() == flow.Return {
			return f.Payload(), nil
		}

		return nil, nil
	}

	return result, nil
}

// [script name "param ..." "body"] defines a script.
func defineScript(r *ram.T, args []cell.I) (cell.I, error) {
	name := cell.String(args[0])

	body, err := reader.Parse("script "+name, cell.String(args[2]))
	if err != nil {
		return nil, err
	}

	params := strings.Fields(cell.String(args[1]))

	return nil, r.SetScript(args[0], script.New(params, body))
}
