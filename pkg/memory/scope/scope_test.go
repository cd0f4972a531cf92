// Released under an MIT license. See LICENSE.

package scope

import (
	"errors"
	"testing"

	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/num"
)

func TestSetGetDel(t *testing.T) {
	s := New()

	s.Set("x", num.New(1))
	s.Set("a", num.New(2))

	v, err := s.Get("x")
	if err != nil || !v.Equal(num.New(1)) {
		t.Fatalf("expected 1, got %v (%v)", v, err)
	}

	if names := s.Names(); len(names) != 2 || names[0] != "a" || names[1] != "x" {
		t.Fatalf("unexpected names %v", names)
	}

	if err := s.Del("x"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Get("x"); !errors.Is(err, fault.ErrUndeclared) {
		t.Fatalf("expected x to be undeclared, got %v", err)
	}

	if err := s.Del("x"); !errors.Is(err, fault.ErrUndeclared) {
		t.Fatalf("expected x to be undeclared, got %v", err)
	}

	s.Reset()

	if s.Size() != 0 {
		t.Fatalf("expected an empty scope, got %d entries", s.Size())
	}
}
