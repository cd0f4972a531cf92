// Released under an MIT license. See LICENSE.

// Package ram provides the runtime context for evaluating Brack programs.
//
// A *T owns the global memory, the operator table and the call stack. It is
// not safe for concurrent use; the streamed pipeline keeps all evaluation on
// one goroutine.
package ram

import (
	"log/slog"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/memory/callstack"
	"github.com/bracklang/brack/pkg/memory/global"
	"github.com/bracklang/brack/pkg/memory/local"
	"github.com/bracklang/brack/pkg/script"
)

// T (ram) is the memory and operator table used by one evaluation.
type T struct {
	globals *global.T
	ops     *Table
	stack   *callstack.T
}

type ram = T

// New creates a RAM with empty global memory and the operator table ops.
func New(ops *Table) *ram {
	return NewWith(global.New(), ops)
}

// NewWith creates a RAM over existing global memory g.
func NewWith(g *global.T, ops *Table) *ram {
	if g == nil {
		g = global.New()
	}

	if ops == nil {
		ops = &Table{m: map[string]*Operator{}}
	}

	return &ram{
		globals: g,
		ops:     ops,
		stack:   callstack.New(),
	}
}

// Globals returns the global memory of r.
func (r *ram) Globals() *global.T {
	return r.globals
}

// Operators returns the operator table of r.
func (r *ram) Operators() *Table {
	return r.ops
}

// Globals.

// DeleteGlobal removes the global named by k.
func (r *ram) DeleteGlobal(k cell.I) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	return r.globals.DeleteGlobal(n)
}

// Global returns the value of the global named by k.
func (r *ram) Global(k cell.I) (cell.I, error) {
	n, err := r.Name(k)
	if err != nil {
		return nil, err
	}

	return r.globals.Global(n)
}

// GlobalCount returns the number of globals.
func (r *ram) GlobalCount() int {
	return r.globals.GlobalCount()
}

// GlobalNames returns the sorted names of all globals.
func (r *ram) GlobalNames() []string {
	return r.globals.GlobalNames()
}

// HasGlobal returns true if k names a global.
func (r *ram) HasGlobal(k cell.I) (bool, error) {
	n, err := r.Name(k)
	if err != nil {
		return false, err
	}

	return r.globals.HasGlobal(n), nil
}

// ResetGlobals removes every global.
func (r *ram) ResetGlobals() {
	r.globals.ResetGlobals()
}

// SetGlobal binds the global named by k to v.
func (r *ram) SetGlobal(k, v cell.I) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	r.globals.SetGlobal(n, v)

	return nil
}

// Locals.

// DeleteLocal removes the innermost binding of the local named by k.
func (r *ram) DeleteLocal(k cell.I) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	return f.Del(n)
}

// HasLocal returns true if k names a local in the current frame.
func (r *ram) HasLocal(k cell.I) (bool, error) {
	n, err := r.Name(k)
	if err != nil {
		return false, err
	}

	f, err := r.stack.Current()
	if err != nil {
		return false, err
	}

	return f.Has(n), nil
}

// Local returns the value of the local named by k.
func (r *ram) Local(k cell.I) (cell.I, error) {
	n, err := r.Name(k)
	if err != nil {
		return nil, err
	}

	f, err := r.stack.Current()
	if err != nil {
		return nil, err
	}

	return f.Get(n)
}

// LocalNames returns the sorted names visible in the current frame.
func (r *ram) LocalNames() ([]string, error) {
	f, err := r.stack.Current()
	if err != nil {
		return nil, err
	}

	return f.Names(), nil
}

// ResetLocals clears every scope of the current frame.
func (r *ram) ResetLocals() error {
	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	f.ResetLocals()

	return nil
}

// SetLocal binds the local named by k to v in the current frame.
func (r *ram) SetLocal(k, v cell.I) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	return f.Set(n, v)
}

// Scripts.

// DeleteScript removes the script named by k.
func (r *ram) DeleteScript(k cell.I) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	return r.globals.DeleteScript(n)
}

// ExecuteScript runs the script named by k with the raw arguments args.
func (r *ram) ExecuteScript(k cell.I, args []cell.I) (cell.I, error) {
	s, err := r.Script(k)
	if err != nil {
		return nil, err
	}

	return s.Execute(r, args)
}

// HasScript returns true if k names a script.
func (r *ram) HasScript(k cell.I) (bool, error) {
	n, err := r.Name(k)
	if err != nil {
		return false, err
	}

	return r.globals.HasScript(n), nil
}

// ResetScripts removes every script.
func (r *ram) ResetScripts() {
	r.globals.ResetScripts()
}

// Script returns the script named by k.
func (r *ram) Script(k cell.I) (*script.T, error) {
	n, err := r.Name(k)
	if err != nil {
		return nil, err
	}

	return r.globals.Script(n)
}

// ScriptCount returns the number of scripts.
func (r *ram) ScriptCount() int {
	return r.globals.ScriptCount()
}

// ScriptNames returns the sorted names of all scripts.
func (r *ram) ScriptNames() []string {
	return r.globals.ScriptNames()
}

// ScriptParams returns the parameter names of the script named by k.
func (r *ram) ScriptParams(k cell.I) ([]string, error) {
	s, err := r.Script(k)
	if err != nil {
		return nil, err
	}

	return s.Params(), nil
}

// SetScript binds the script named by k to s.
func (r *ram) SetScript(k cell.I, s *script.T) error {
	n, err := r.Name(k)
	if err != nil {
		return err
	}

	r.globals.SetScript(n, s)

	return nil
}

// Frames and scopes.

// Depth returns the number of active frames.
func (r *ram) Depth() int {
	return r.stack.Depth()
}

// PopFrame removes the current frame.
func (r *ram) PopFrame() error {
	err := r.stack.Pop()
	if err == nil {
		slog.Debug("pop frame", slog.Int("depth", r.stack.Depth()))
	}

	return err
}

// PopScope removes the innermost scope of the current frame.
func (r *ram) PopScope() error {
	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	return f.RemoveScope()
}

// PushFrame adds a fresh frame and makes it current.
func (r *ram) PushFrame() *local.T {
	f := r.stack.Push()

	slog.Debug("push frame", slog.Int("depth", r.stack.Depth()))

	return f
}

// PushScope adds a scope to the current frame.
func (r *ram) PushScope() error {
	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	f.AddScope()

	return nil
}

// ResetFrames discards every frame.
func (r *ram) ResetFrames() {
	r.stack.Reset()
}

// ResetScopes leaves the current frame with a single empty scope.
func (r *ram) ResetScopes() error {
	f, err := r.stack.Current()
	if err != nil {
		return err
	}

	f.ResetScopes()

	return nil
}

// Scopes returns the number of scopes in the current frame.
func (r *ram) Scopes() (int, error) {
	f, err := r.stack.Current()
	if err != nil {
		return 0, err
	}

	return f.Scopes(), nil
}

func implements() { //nolint:deadcode,unused
	var t ram

	// The runtime is a script.Machine.
	_ = script.Machine(&t)
}
