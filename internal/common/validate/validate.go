// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to operators.
package validate

import (
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
)

// Variadic returns the first max of args, and the rest.
// It fails if fewer than min arguments were passed.
func Variadic(who string, args []cell.I, min, max int) ([]cell.I, []cell.I, error) {
	if len(args) < min {
		return nil, nil, fault.Arity(who, min, len(args))
	}

	if len(args) < max {
		max = len(args)
	}

	return args[:max], args[max:], nil
}

// Fixed returns args if there are between min and max of them.
func Fixed(who string, args []cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(who, args, min, max)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, fault.Arity(who, max, len(args))
	}

	return expected, nil
}

// Texts returns the printed form of each value in args.
func Texts(args []cell.I) []string {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = cell.String(a)
	}

	return s
}
