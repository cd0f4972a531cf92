// Released under an MIT license. See LICENSE.

// Package commands provides the standard operators of the brack command.
package commands

import (
	"io"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/str"
)

// Operators returns the standard operators. Output is written to out.
func Operators(out io.Writer) []*ram.Operator {
	p := &printer{w: out}

	return []*ram.Operator{
		ram.Variadic("add", ram.Number, add),
		ram.Fixed("block", []ram.Kind{ram.Text}, block),
		ram.Fixed("break", nil, breaking),
		ram.Variadic("call", ram.Any, call),
		ram.Variadic("concat", ram.Any, concat),
		ram.Fixed("continue", nil, continuing),
		ram.Fixed("delete-global", []ram.Kind{ram.Text}, deleteGlobal),
		ram.Fixed("delete-local", []ram.Kind{ram.Text}, deleteLocal),
		ram.Variadic("div", ram.Number, div),
		ram.Variadic("eq", ram.Any, eq),
		ram.Variadic("global", ram.Any, global),
		ram.Variadic("gt", ram.Number, gt),
		ram.Variadic("if", ram.Any, ifThenElse),
		ram.Variadic("local", ram.Any, local),
		ram.Variadic("lt", ram.Number, lt),
		ram.Fixed("match", []ram.Kind{ram.Text, ram.Text}, match),
		ram.Variadic("mul", ram.Number, mul),
		ram.Variadic("not", ram.Any, not),
		ram.Fixed("print", []ram.Kind{ram.Text}, p.print),
		ram.Variadic("return", ram.Any, returning),
		ram.Variadic("say", ram.Any, p.say),
		ram.Fixed("script", []ram.Kind{ram.Text, ram.Text, ram.Text}, defineScript),
		ram.Variadic("sub", ram.Number, sub),
		ram.Fixed("while", []ram.Kind{ram.Text, ram.Text}, while),
	}
}

// Bool converts b to the number 1 or 0.
func Bool(b bool) cell.I {
	if b {
		return num.New(1)
	}

	return num.New(0)
}

// Truth returns false for nothing, the number zero, and the empty text.
// Everything else is true.
func Truth(c cell.I) bool {
	if c == nil {
		return false
	}

	if n, ok := num.To(c); ok {
		return n.Float() != 0
	}

	if s, ok := str.To(c); ok {
		return string(*s) != ""
	}

	return true
}
