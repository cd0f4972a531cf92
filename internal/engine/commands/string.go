// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/bracklang/brack/internal/common/validate"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/type/str"
)

type printer struct {
	w io.Writer
}

func (p *printer) print(_ *ram.T, args []cell.I) (cell.I, error) {
	_, err := fmt.Fprintln(p.w, cell.String(args[0]))

	return nil, err
}

func (p *printer) say(_ *ram.T, args []cell.I) (cell.I, error) {
	_, err := fmt.Fprintln(p.w, strings.Join(validate.Texts(args), " "))

	return nil, err
}

func concat(_ *ram.T, args []cell.I) (cell.I, error) {
	return str.New(strings.Join(validate.Texts(args), "")), nil
}

func match(_ *ram.T, args []cell.I) (cell.I, error) {
	ok, err := adapted.Match(cell.String(args[0]), cell.String(args[1]))
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	return Bool(ok), nil
}
