// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
)

func deleteGlobal(r *ram.T, args []cell.I) (cell.I, error) {
	return nil, r.DeleteGlobal(args[0])
}

func deleteLocal(r *ram.T, args []cell.I) (cell.I, error) {
	return nil, r.DeleteLocal(args[0])
}

// [global name] returns the value of a global. [global name value] sets it.
func global(r *ram.T, args []cell.I) (cell.I, error) {
	v, err := validate.Fixed("global", args, 1, 2)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		return r.Global(v[0])
	}

	return v[1], r.SetGlobal(v[0], v[1])
}

// [local name] returns the value of a local. [local name value] sets it.
func local(r *ram.T, args []cell.I) (cell.I, error) {
	v, err := validate.Fixed("local", args, 1, 2)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		return r.Local(v[0])
	}

	return v[1], r.SetLocal(v[0], v[1])
}
