// Released under an MIT license. See LICENSE.

package script

import (
	"errors"
	"testing"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/memory/callstack"
	"github.com/bracklang/brack/pkg/memory/local"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/prog"
	"github.com/bracklang/brack/pkg/type/str"
)

// machine binds arguments and records what the body would see.
type machine struct {
	named []int // Depth at each argument resolution.
	ran   int   // Depth while the body runs.
	seen  map[string]cell.I
	stack *callstack.T
}

func (m *machine) Name(c cell.I) (string, error) {
	m.named = append(m.named, m.stack.Depth())

	return cell.String(c), nil
}

func (m *machine) PopFrame() error {
	return m.stack.Pop()
}

func (m *machine) PushFrame() *local.T {
	return m.stack.Push()
}

func (m *machine) Run(_ *prog.T) (cell.I, error) {
	m.ran = m.stack.Depth()

	f, err := m.stack.Current()
	if err != nil {
		return nil, err
	}

	for _, k := range f.Names() {
		m.seen[k], _ = f.Get(k)
	}

	return nil, nil
}

func TestParams(t *testing.T) {
	s := New([]string{"a", "b"}, nil)

	if p, err := s.Param(1); err != nil || p != "b" {
		t.Fatalf("expected b, got %q (%v)", p, err)
	}

	if _, err := s.Param(2); !errors.Is(err, fault.ErrArity) {
		t.Fatalf("expected an arity error, got %v", err)
	}

	s.Params()[0] = "z"

	if p, _ := s.Param(0); p != "a" {
		t.Fatal("parameters should not be shared")
	}

	if s.Body().Len() != 0 {
		t.Fatal("expected an empty body")
	}
}

func TestExecuteBindsNumbersAndText(t *testing.T) {
	m := &machine{seen: map[string]cell.I{}, stack: callstack.New()}
	s := New([]string{"n", "s"}, prog.New())

	if _, err := s.Execute(m, []cell.I{str.New("42"), str.New("hello")}); err != nil {
		t.Fatal(err)
	}

	if !cell.Equal(m.seen["n"], num.New(42)) {
		t.Fatalf("expected the number 42, got %v", m.seen["n"])
	}

	if !cell.Equal(m.seen["s"], str.New("hello")) {
		t.Fatalf("expected the text hello, got %v", m.seen["s"])
	}

	if m.stack.Depth() != 0 {
		t.Fatalf("expected the frame to be removed, depth is %d", m.stack.Depth())
	}

	if _, err := s.Execute(m, nil); !errors.Is(err, fault.ErrArity) {
		t.Fatalf("expected an arity error, got %v", err)
	}
}

func TestExecuteUsesOneFrame(t *testing.T) {
	m := &machine{seen: map[string]cell.I{}, stack: callstack.New()}
	m.stack.Push()

	s := New([]string{"a", "b"}, prog.New())

	if _, err := s.Execute(m, []cell.I{num.New(1), num.New(2)}); err != nil {
		t.Fatal(err)
	}

	if len(m.named) != 2 {
		t.Fatalf("expected 2 argument resolutions, got %d", len(m.named))
	}

	for i, d := range m.named {
		if d != 1 {
			t.Fatalf("argument %d: expected resolution in the caller's frame, depth was %d", i+1, d)
		}
	}

	if m.ran != 2 {
		t.Fatalf("expected the body to run one frame deeper than the caller, depth was %d", m.ran)
	}

	if m.stack.Depth() != 1 {
		t.Fatalf("expected the caller's frame to remain, depth is %d", m.stack.Depth())
	}
}
