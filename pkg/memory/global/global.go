// Released under an MIT license. See LICENSE.

// Package global provides the process-wide store of variables and scripts.
package global

import (
	"sort"

	"github.com/michaelmacinnis/adapted"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/script"
)

// T (global) maps names to global variables and, separately, to scripts.
type T struct {
	globals map[string]cell.I
	scripts map[string]*script.T
}

type global = T

// New creates an empty global memory.
func New() *global {
	g := &global{}
	g.ResetGlobals()
	g.ResetScripts()

	return g
}

// DeleteGlobal removes the global k.
func (g *global) DeleteGlobal(k string) error {
	if _, ok := g.globals[k]; !ok {
		return fault.Undeclared(fault.Global, k)
	}

	delete(g.globals, k)

	return nil
}

// DeleteScript removes the script k.
func (g *global) DeleteScript(k string) error {
	if _, ok := g.scripts[k]; !ok {
		return fault.Undeclared(fault.Script, k)
	}

	delete(g.scripts, k)

	return nil
}

// Global returns the value of the global k.
func (g *global) Global(k string) (cell.I, error) {
	v, ok := g.globals[k]
	if !ok {
		return nil, fault.Undeclared(fault.Global, k)
	}

	return v, nil
}

// GlobalCount returns the number of globals.
func (g *global) GlobalCount() int {
	return len(g.globals)
}

// GlobalNames returns the names of all globals, sorted.
func (g *global) GlobalNames() []string {
	return names(g.globals)
}

// HasGlobal returns true if k is a global.
func (g *global) HasGlobal(k string) bool {
	_, ok := g.globals[k]

	return ok
}

// HasScript returns true if k is a script.
func (g *global) HasScript(k string) bool {
	_, ok := g.scripts[k]

	return ok
}

// MatchGlobals returns the sorted names of globals that match the glob pattern.
func (g *global) MatchGlobals(pattern string) ([]string, error) {
	return Match(g.GlobalNames(), pattern)
}

// MatchScripts returns the sorted names of scripts that match the glob pattern.
func (g *global) MatchScripts(pattern string) ([]string, error) {
	return Match(g.ScriptNames(), pattern)
}

// ResetGlobals removes every global.
func (g *global) ResetGlobals() {
	g.globals = map[string]cell.I{}
}

// ResetScripts removes every script.
func (g *global) ResetScripts() {
	g.scripts = map[string]*script.T{}
}

// Script returns the script k.
func (g *global) Script(k string) (*script.T, error) {
	s, ok := g.scripts[k]
	if !ok {
		return nil, fault.Undeclared(fault.Script, k)
	}

	return s, nil
}

// ScriptCount returns the number of scripts.
func (g *global) ScriptCount() int {
	return len(g.scripts)
}

// ScriptNames returns the names of all scripts, sorted.
func (g *global) ScriptNames() []string {
	return names(g.scripts)
}

// SetGlobal associates the name k with the value v.
func (g *global) SetGlobal(k string, v cell.I) {
	g.globals[k] = v
}

// SetScript associates the name k with the script s.
func (g *global) SetScript(k string, s *script.T) {
	g.scripts[k] = s
}

// Match filters the sorted list of names ns with the glob pattern.
func Match(ns []string, pattern string) ([]string, error) {
	matched := []string{}

	for _, n := range ns {
		ok, err := adapted.Match(pattern, n)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, n)
		}
	}

	return matched, nil
}

func names[V any](m map[string]V) []string {
	ns := make([]string, 0, len(m))
	for k := range m {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}
