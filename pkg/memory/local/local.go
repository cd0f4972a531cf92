// Released under an MIT license. See LICENSE.

// Package local provides the scope stack for one active call.
//
// Reads search from the innermost scope outward. Writes update the innermost
// scope that already binds a name and otherwise create the binding in the
// innermost scope, so a name can be shadowed only by binding it explicitly in
// a fresh scope.
package local

import (
	"sort"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/memory/scope"
)

// T (local) is an ordered stack of scopes. The last scope is innermost.
type T struct {
	scopes []*scope.T
}

type local = T

// New creates a local memory with a single scope.
func New() *local {
	l := &local{}
	l.ResetScopes()

	return l
}

// AddScope pushes a fresh, innermost scope.
func (l *local) AddScope() {
	l.scopes = append(l.scopes, scope.New())
}

// Del removes the innermost binding of k.
func (l *local) Del(k string) error {
	s := l.find(k)
	if s == nil {
		return fault.Undeclared(fault.Local, k)
	}

	return s.Del(k)
}

// Get returns the value of the innermost binding of k.
func (l *local) Get(k string) (cell.I, error) {
	s := l.find(k)
	if s == nil {
		return nil, fault.Undeclared(fault.Local, k)
	}

	return s.Get(k)
}

// Has returns true if any scope binds k.
func (l *local) Has(k string) bool {
	return l.find(k) != nil
}

// Names returns every name bound in any scope, sorted and without duplicates.
func (l *local) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for _, s := range l.scopes {
		for _, k := range s.Names() {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	sort.Strings(names)

	return names
}

// RemoveScope pops the innermost scope.
func (l *local) RemoveScope() error {
	n := len(l.scopes)
	if n == 0 {
		return fault.NoFrame("scope")
	}

	l.scopes[n-1] = nil
	l.scopes = l.scopes[:n-1]

	return nil
}

// ResetLocals removes every binding but keeps the scopes.
func (l *local) ResetLocals() {
	for _, s := range l.scopes {
		s.Reset()
	}
}

// ResetScopes discards every scope and starts again with a single scope.
func (l *local) ResetScopes() {
	l.scopes = []*scope.T{scope.New()}
}

// Scopes returns the number of scopes.
func (l *local) Scopes() int {
	return len(l.scopes)
}

// Set updates the innermost binding of k or, if k is not bound, binds k in
// the innermost scope.
func (l *local) Set(k string, v cell.I) error {
	if s := l.find(k); s != nil {
		s.Set(k, v)

		return nil
	}

	s, err := l.Top()
	if err != nil {
		return err
	}

	s.Set(k, v)

	return nil
}

// Size returns the number of bindings across all scopes.
func (l *local) Size() int {
	n := 0
	for _, s := range l.scopes {
		n += s.Size()
	}

	return n
}

// Top returns the innermost scope.
func (l *local) Top() (*scope.T, error) {
	n := len(l.scopes)
	if n == 0 {
		return nil, fault.NoFrame("scope")
	}

	return l.scopes[n-1], nil
}

func (l *local) find(k string) *scope.T {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if l.scopes[i].Has(k) {
			return l.scopes[i]
		}
	}

	return nil
}
