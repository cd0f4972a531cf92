// Released under an MIT license. See LICENSE.

package callstack

import (
	"errors"
	"testing"

	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/num"
)

func TestPushPop(t *testing.T) {
	c := New()

	if _, err := c.Current(); !errors.Is(err, fault.ErrNoFrame) {
		t.Fatalf("expected no frame, got %v", err)
	}

	outer := c.Push()
	_ = outer.Set("x", num.New(1))

	inner := c.Push()

	if c.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", c.Depth())
	}

	if inner.Has("x") {
		t.Fatal("frames should not share locals")
	}

	if f, _ := c.Current(); f != inner {
		t.Fatal("expected the inner frame to be current")
	}

	if err := c.Pop(); err != nil {
		t.Fatal(err)
	}

	if f, _ := c.Current(); f != outer {
		t.Fatal("expected the outer frame to be current")
	}

	c.Reset()

	if err := c.Pop(); !errors.Is(err, fault.ErrNoFrame) {
		t.Fatalf("expected no frame, got %v", err)
	}
}
