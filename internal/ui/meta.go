// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bracklang/brack/pkg/fault"
)

//nolint:gochecknoglobals
var help = map[string]string{
	":globals":   "list globals, optionally matching a pattern",
	":help":      "show this help",
	":operators": "list operators, optionally matching a pattern",
	":quit":      "leave brack",
	":scripts":   "list scripts, optionally matching a pattern",
}

func metas() []string {
	ns := make([]string, 0, len(help))
	for k := range help {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}

func (u *ui) meta(line string) {
	fields := strings.Fields(line)

	pattern := "*"
	if len(fields) > 1 {
		pattern = fields[1]
	}

	var err error

	switch fields[0] {
	case ":globals":
		err = u.globals(pattern)
	case ":help":
		for _, k := range metas() {
			fmt.Fprintf(u.out, "%-11s %s\n", k, help[k])
		}
	case ":operators":
		err = u.operators(pattern)
	case ":quit":
		u.quit = true
	case ":scripts":
		err = u.scripts(pattern)
	default:
		err = fmt.Errorf("unknown command %s, try :help", fields[0])
	}

	if err != nil {
		u.report(err)
	}
}

func (u *ui) globals(pattern string) error {
	g := u.r.Globals()

	names, err := g.MatchGlobals(pattern)
	if err != nil {
		return err
	}

	for _, n := range names {
		v, err := g.Global(n)
		if err != nil {
			return err
		}

		fmt.Fprintf(u.out, "%s = %s\n", n, Display(v))
	}

	return nil
}

func (u *ui) operators(pattern string) error {
	t := u.r.Operators()

	names, err := t.Match(pattern)
	if err != nil {
		return err
	}

	for _, n := range names {
		o, err := t.Get(n)
		if err != nil {
			return err
		}

		kinds := make([]string, 0, len(o.Kinds()))
		for _, k := range o.Kinds() {
			kinds = append(kinds, k.String())
		}

		shape := strings.Join(kinds, " ")
		if o.Variadic() {
			shape += "..."
		}

		fmt.Fprintf(u.out, "%s %s\n", n, shape)
	}

	return nil
}

func (u *ui) scripts(pattern string) error {
	g := u.r.Globals()

	names, err := g.MatchScripts(pattern)
	if err != nil {
		return err
	}

	for _, n := range names {
		s, err := g.Script(n)
		if err != nil {
			return err
		}

		fmt.Fprintf(u.out, "%s [%s] (%s)\n",
			n, strings.Join(s.Params(), " "), fault.Count(s.Body().Len(), "statement", "s"))
	}

	return nil
}
