// Released under an MIT license. See LICENSE.

package engine_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bracklang/brack/internal/engine/commands"
	"github.com/bracklang/brack/pkg/codec"
	"github.com/bracklang/brack/pkg/engine"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/flow"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/str"
)

func machine(t *testing.T) (*ram.T, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	table, err := ram.NewTable(commands.Operators(&out)...)
	if err != nil {
		t.Fatal(err)
	}

	return ram.New(table), &out
}

func program(n int) string {
	var b strings.Builder

	b.WriteString("[local total 0]\n")

	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "[local total [add [local total] %d]]\n", i)
		fmt.Fprintf(&b, "[say line %d [local total]]\n", i)
	}

	return b.String()
}

// A source that never ends.
type endless struct{}

func (endless) HasNext() bool {
	return true
}

func (endless) Next() (*expr.T, error) {
	return expr.New(str.New("return"), num.New(7)), nil
}

// A source that fails after a number of statements.
type failing struct {
	err error
	n   int
}

func (f *failing) HasNext() bool {
	return true
}

func (f *failing) Next() (*expr.T, error) {
	if f.n == 0 {
		return nil, f.err
	}

	f.n--

	return expr.New(str.New("print"), str.New("ok")), nil
}

func TestStreamMatchesExecute(t *testing.T) {
	for _, n := range []int{0, 1, 3, engine.DefaultQueue + 5} {
		for _, queue := range []int{0, 1, 2} {
			text := program(n)

			r, expected := machine(t)

			if _, err := engine.RunText(r, "test", strings.NewReader(text), engine.Options{}); err != nil {
				t.Fatal(err)
			}

			s, actual := machine(t)

			o := engine.Options{Queue: queue, Threaded: true}
			if _, err := engine.RunText(s, "test", strings.NewReader(text), o); err != nil {
				t.Fatal(err)
			}

			if actual.String() != expected.String() {
				t.Fatalf("%d statements, queue %d: expected\n%s\ngot\n%s",
					n, queue, expected.String(), actual.String())
			}

			if r.Depth() != 0 || s.Depth() != 0 {
				t.Fatalf("expected no frames, got %d and %d", r.Depth(), s.Depth())
			}
		}
	}
}

func TestStreamStops(t *testing.T) {
	r, _ := machine(t)

	result, err := engine.Stream(r, endless{}, 4)
	if err != nil {
		t.Fatal(err)
	}

	f, ok := flow.To(result)
	if !ok || f.Kind() != flow.Return || !f.Payload().Equal(num.New(7)) {
		t.Fatalf("expected a return of 7, got %v", result)
	}

	if r.Depth() != 0 {
		t.Fatalf("expected no frames, got %d", r.Depth())
	}
}

func TestStreamReadError(t *testing.T) {
	broken := errors.New("broken")

	for _, threaded := range []bool{false, true} {
		r, out := machine(t)

		_, err := engine.Run(r, &failing{err: broken, n: 3}, engine.Options{Threaded: threaded})
		if !errors.Is(err, broken) {
			t.Fatalf("expected %v, got %v", broken, err)
		}

		if threaded && out.String() != "ok\nok\nok\n" {
			t.Fatalf("expected every statement read to run, got %q", out.String())
		}

		if !threaded && out.Len() != 0 {
			t.Fatalf("expected nothing to run, got %q", out.String())
		}

		if r.Depth() != 0 {
			t.Fatalf("expected no frames, got %d", r.Depth())
		}
	}
}

func TestStreamEvaluationError(t *testing.T) {
	r, out := machine(t)

	text := "[print first] [nonesuch] [print second]"

	_, err := engine.RunText(r, "test", strings.NewReader(text), engine.Options{Threaded: true})
	if !errors.Is(err, fault.ErrOperatorNotFound) {
		t.Fatalf("expected an unknown operator, got %v", err)
	}

	if out.String() != "first\n" {
		t.Fatalf("expected evaluation to stop, got %q", out.String())
	}

	if r.Depth() != 0 {
		t.Fatalf("expected no frames, got %d", r.Depth())
	}
}

func TestSignalStopsRun(t *testing.T) {
	for _, threaded := range []bool{false, true} {
		r, out := machine(t)

		text := "[print before] [return 5] [print after]"

		result, err := engine.RunText(r, "test", strings.NewReader(text), engine.Options{Threaded: threaded})
		if err != nil {
			t.Fatal(err)
		}

		if !flow.Is(result, flow.Return) {
			t.Fatalf("expected a return, got %v", result)
		}

		if out.String() != "before\n" {
			t.Fatalf("expected evaluation to stop, got %q", out.String())
		}
	}
}

func TestRunBytes(t *testing.T) {
	p, err := reader.Parse("test", program(4))
	if err != nil {
		t.Fatal(err)
	}

	b, err := codec.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	r, expected := machine(t)

	if _, err := r.Execute(p); err != nil {
		t.Fatal(err)
	}

	for _, threaded := range []bool{false, true} {
		s, actual := machine(t)

		if _, err := engine.RunBytes(s, bytes.NewReader(b), engine.Options{Threaded: threaded}); err != nil {
			t.Fatal(err)
		}

		if actual.String() != expected.String() {
			t.Fatalf("expected\n%s\ngot\n%s", expected.String(), actual.String())
		}
	}
}

func TestMalformedText(t *testing.T) {
	for _, threaded := range []bool{false, true} {
		r, _ := machine(t)

		_, err := engine.RunText(r, "bad", strings.NewReader("[print ok]\n[print"), engine.Options{Threaded: threaded})
		if !errors.Is(err, fault.ErrMalformed) {
			t.Fatalf("expected malformed source, got %v", err)
		}
	}
}
