// Released under an MIT license. See LICENSE.

package global

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/script"
	"github.com/bracklang/brack/pkg/type/num"
)

func TestGlobals(t *testing.T) {
	g := New()

	g.SetGlobal("x", num.New(5))

	v, err := g.Global("x")
	if err != nil || !v.Equal(num.New(5)) {
		t.Fatalf("expected 5, got %v (%v)", v, err)
	}

	if err := g.DeleteGlobal("x"); err != nil {
		t.Fatal(err)
	}

	if _, err := g.Global("x"); !errors.Is(err, fault.ErrUndeclared) {
		t.Fatalf("expected x to be undeclared, got %v", err)
	}

	if err := g.DeleteGlobal("x"); !errors.Is(err, fault.ErrUndeclared) {
		t.Fatalf("expected x to be undeclared, got %v", err)
	}
}

func TestScriptsAreSeparate(t *testing.T) {
	g := New()

	g.SetGlobal("f", num.New(1))
	g.SetScript("f", script.New([]string{"a"}, nil))

	if !g.HasGlobal("f") || !g.HasScript("f") {
		t.Fatal("expected f to be both a global and a script")
	}

	g.ResetScripts()

	if g.HasScript("f") || !g.HasGlobal("f") {
		t.Fatal("resetting scripts should leave globals alone")
	}

	if _, err := g.Script("f"); !errors.Is(err, fault.ErrUndeclared) {
		t.Fatalf("expected f to be undeclared, got %v", err)
	}
}

func TestEnumeration(t *testing.T) {
	g := New()

	for _, k := range []string{"beta", "alpha", "apple"} {
		g.SetGlobal(k, num.New(0))
	}

	if g.GlobalCount() != 3 {
		t.Fatalf("expected 3 globals, got %d", g.GlobalCount())
	}

	if names := g.GlobalNames(); !reflect.DeepEqual(names, []string{"alpha", "apple", "beta"}) {
		t.Fatalf("unexpected names %v", names)
	}

	names, err := g.MatchGlobals("a*")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(names, []string{"alpha", "apple"}) {
		t.Fatalf("unexpected matches %v", names)
	}

	names, err = g.MatchScripts("*")
	if err != nil || len(names) != 0 {
		t.Fatalf("expected no scripts, got %v (%v)", names, err)
	}

	g.ResetGlobals()

	if g.GlobalCount() != 0 {
		t.Fatalf("expected no globals, got %d", g.GlobalCount())
	}
}
