// Released under an MIT license. See LICENSE.

// Package scope provides the bindings for a single lexical block.
package scope

import (
	"sort"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
)

// T (scope) maps local names to values.
type T struct {
	m map[string]cell.I
}

type scope = T

// New creates a new, empty scope.
func New() *scope {
	return &scope{m: map[string]cell.I{}}
}

// Del frees the name k from any association in the scope s.
func (s *scope) Del(k string) error {
	if _, ok := s.m[k]; !ok {
		return fault.Undeclared(fault.Local, k)
	}

	delete(s.m, k)

	return nil
}

// Get retrieves the value associated with the name k in the scope s.
func (s *scope) Get(k string) (cell.I, error) {
	v, ok := s.m[k]
	if !ok {
		return nil, fault.Undeclared(fault.Local, k)
	}

	return v, nil
}

// Has returns true if k is bound in the scope s.
func (s *scope) Has(k string) bool {
	_, ok := s.m[k]

	return ok
}

// Names returns the names bound in the scope s, sorted.
func (s *scope) Names() []string {
	names := make([]string, 0, len(s.m))
	for k := range s.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Reset removes every binding from the scope s.
func (s *scope) Reset() {
	s.m = map[string]cell.I{}
}

// Set associates the name k with the value v in the scope s.
func (s *scope) Set(k string, v cell.I) {
	s.m[k] = v
}

// Size returns the number of entries in the scope s.
func (s *scope) Size() int {
	return len(s.m)
}
