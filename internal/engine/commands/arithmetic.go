// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/type/num"
)

func add(_ *ram.T, args []cell.I) (cell.I, error) {
	sum := 0.0

	for _, a := range args {
		sum += value(a)
	}

	return num.New(sum), nil
}

func div(_ *ram.T, args []cell.I) (cell.I, error) {
	v, args, err := validate.Variadic("div", args, 1, 1)
	if err != nil {
		return nil, err
	}

	quotient := value(v[0])

	for _, a := range args {
		quotient /= value(a)
	}

	return num.New(quotient), nil
}

func mul(_ *ram.T, args []cell.I) (cell.I, error) {
	v, args, err := validate.Variadic("mul", args, 1, 1)
	if err != nil {
		return nil, err
	}

	product := value(v[0])

	for _, a := range args {
		product *= value(a)
	}

	return num.New(product), nil
}

func sub(_ *ram.T, args []cell.I) (cell.I, error) {
	v, args, err := validate.Variadic("sub", args, 1, 1)
	if err != nil {
		return nil, err
	}

	difference := value(v[0])
	if len(args) == 0 {
		return num.New(-difference), nil
	}

	for _, a := range args {
		difference -= value(a)
	}

	return num.New(difference), nil
}

// Arguments to numeric operators have already been checked.
func value(c cell.I) float64 {
	n, _ := num.To(c)

	return n.Float()
}
