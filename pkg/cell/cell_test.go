// Released under an MIT license. See LICENSE.

package cell_test

import (
	"testing"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/str"
)

type opaque struct{}

func (*opaque) Equal(c cell.I) bool { return false }
func (*opaque) Name() string        { return "opaque" }

func TestString(t *testing.T) {
	for _, c := range []struct {
		v cell.I
		s string
	}{
		{nil, ""},
		{str.New("x"), "x"},
		{num.New(3), "3"},
		{num.New(0.25), "0.25"},
		{expr.New(str.New("add"), num.New(1)), "[add 1]"},
		{&opaque{}, "opaque"},
	} {
		if actual := cell.String(c.v); actual != c.s {
			t.Fatalf("expected %q, got %q", c.s, actual)
		}
	}
}

func TestEqual(t *testing.T) {
	if !cell.Equal(nil, nil) {
		t.Fatal("nil should equal nil")
	}

	if cell.Equal(nil, num.New(0)) || cell.Equal(num.New(0), nil) {
		t.Fatal("nil should not equal 0")
	}

	if cell.Equal(num.New(1), str.New("1")) {
		t.Fatal("the number 1 should not equal the text 1")
	}

	if cell.Name(nil) != "nothing" {
		t.Fatalf("unexpected name %q", cell.Name(nil))
	}
}
