// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
)

func eq(_ *ram.T, args []cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic("eq", args, 2, 2)
	if err != nil {
		return nil, err
	}

	if !cell.Equal(v[0], v[1]) {
		return Bool(false), nil
	}

	for _, c := range rest {
		if !cell.Equal(v[0], c) {
			return Bool(false), nil
		}
	}

	return Bool(true), nil
}

func gt(_ *ram.T, args []cell.I) (cell.I, error) {
	return chain("gt", args, func(a, b float64) bool { return a > b })
}

func lt(_ *ram.T, args []cell.I) (cell.I, error) {
	return chain("lt", args, func(a, b float64) bool { return a < b })
}

func not(_ *ram.T, args []cell.I) (cell.I, error) {
	v, err := validate.Fixed("not", args, 1, 1)
	if err != nil {
		return nil, err
	}

	return Bool(!Truth(v[0])), nil
}

func chain(who string, args []cell.I, ordered func(a, b float64) bool) (cell.I, error) {
	if _, _, err := validate.Variadic(who, args, 2, 2); err != nil {
		return nil, err
	}

	prev := value(args[0])

	for _, a := range args[1:] {
		curr := value(a)
		if !ordered(prev, curr) {
			return Bool(false), nil
		}

		prev = curr
	}

	return Bool(true), nil
}
