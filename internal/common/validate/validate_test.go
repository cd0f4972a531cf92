// Released under an MIT license. See LICENSE.

package validate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/str"
)

func args(n int) []cell.I {
	a := make([]cell.I, n)
	for i := range a {
		a[i] = num.New(float64(i))
	}

	return a
}

func TestVariadic(t *testing.T) {
	v, rest, err := Variadic("op", args(4), 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(v) != 2 || len(rest) != 2 {
		t.Fatalf("expected 2 and 2, got %d and %d", len(v), len(rest))
	}

	v, rest, err = Variadic("op", args(1), 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(v) != 1 || len(rest) != 0 {
		t.Fatalf("expected 1 and 0, got %d and %d", len(v), len(rest))
	}

	_, _, err = Variadic("op", args(0), 1, 2)
	if !errors.Is(err, fault.ErrArity) {
		t.Fatalf("expected an arity error, got %v", err)
	}
}

func TestFixed(t *testing.T) {
	for n := 1; n <= 2; n++ {
		v, err := Fixed("op", args(n), 1, 2)
		if err != nil {
			t.Fatal(err)
		}

		if len(v) != n {
			t.Fatalf("expected %d, got %d", n, len(v))
		}
	}

	for _, n := range []int{0, 3} {
		_, err := Fixed("op", args(n), 1, 2)
		if !errors.Is(err, fault.ErrArity) {
			t.Fatalf("%d arguments: expected an arity error, got %v", n, err)
		}
	}
}

func TestTexts(t *testing.T) {
	actual := Texts([]cell.I{str.New("a b"), num.New(0.5), nil})

	expected := []string{"a b", "0.5", ""}
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %q, got %q", expected, actual)
	}
}
