// Released under an MIT license. See LICENSE.

package ram

import (
	"sort"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/memory/global"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/str"
)

// Kind is the type an operator expects in an argument slot.
type Kind uint8

// Argument kinds.
const (
	Any Kind = iota
	Number
	Text
	Expression
)

// Accepts returns true if c may be passed in a slot of kind k.
func (k Kind) Accepts(c cell.I) bool {
	switch k {
	case Any:
		return true
	case Number:
		return num.Is(c)
	case Text:
		return str.Is(c)
	case Expression:
		return expr.Is(c)
	}

	return false
}

func (k Kind) String() string {
	switch k {
	case Any:
		return "anything"
	case Number:
		return "number"
	case Text:
		return "text"
	case Expression:
		return "expression"
	}

	return "unknown"
}

// Func is the native implementation of an operator.
type Func func(r *T, args []cell.I) (cell.I, error)

// Operator is a named native function with a declared argument shape.
type Operator struct {
	fn       Func
	kinds    []Kind
	name     string
	variadic bool
}

// Fixed creates an operator that takes exactly len(kinds) arguments.
func Fixed(name string, kinds []Kind, fn Func) *Operator {
	return &Operator{
		fn:    fn,
		kinds: append([]Kind(nil), kinds...),
		name:  name,
	}
}

// Variadic creates an operator that takes any number of arguments of kind k.
func Variadic(name string, k Kind, fn Func) *Operator {
	return &Operator{
		fn:       fn,
		kinds:    []Kind{k},
		name:     name,
		variadic: true,
	}
}

// Arity returns the number of arguments o expects or -1 if o is variadic.
func (o *Operator) Arity() int {
	if o.variadic {
		return -1
	}

	return len(o.kinds)
}

// Invoke calls o with the raw, unevaluated arguments args.
//
// Arguments to a variadic operator are evaluated to their values. Arguments
// to a fixed operator are checked for count first; literals are then passed
// unchanged and expressions are reduced to their names as text.
func (o *Operator) Invoke(r *T, args []cell.I) (cell.I, error) {
	coerced := make([]cell.I, len(args))

	if o.variadic {
		k := o.kinds[0]

		for i, a := range args {
			v, err := r.Value(a)
			if err != nil {
				return nil, err
			}

			if !k.Accepts(v) {
				return nil, fault.Type(o.name, i+1, k.String(), cell.Name(v))
			}

			coerced[i] = v
		}

		return o.fn(r, coerced)
	}

	if len(args) != len(o.kinds) {
		return nil, fault.Arity(o.name, len(o.kinds), len(args))
	}

	for i, a := range args {
		v := a

		if expr.Is(a) {
			n, err := r.Name(a)
			if err != nil {
				return nil, err
			}

			v = str.New(n)
		}

		k := o.kinds[i]
		if !k.Accepts(v) {
			return nil, fault.Type(o.name, i+1, k.String(), cell.Name(v))
		}

		coerced[i] = v
	}

	return o.fn(r, coerced)
}

// Kinds returns the declared argument kinds of o.
// A variadic operator has a single kind.
func (o *Operator) Kinds() []Kind {
	return append([]Kind(nil), o.kinds...)
}

// Name returns the name of o.
func (o *Operator) Name() string {
	return o.name
}

// Variadic returns true if o takes any number of arguments.
func (o *Operator) Variadic() bool {
	return o.variadic
}

// Table maps operator names to operators.
type Table struct {
	m map[string]*Operator
}

// NewTable creates a table holding ops.
// It fails if two operators share a name.
func NewTable(ops ...*Operator) (*Table, error) {
	t := &Table{m: make(map[string]*Operator, len(ops))}

	for _, o := range ops {
		if err := t.Add(o); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Add registers o. It fails if an operator with the same name exists.
func (t *Table) Add(o *Operator) error {
	if _, ok := t.m[o.name]; ok {
		return fault.Duplicate(o.name)
	}

	t.m[o.name] = o

	return nil
}

// Count returns the number of operators.
func (t *Table) Count() int {
	return len(t.m)
}

// Get returns the operator called name.
func (t *Table) Get(name string) (*Operator, error) {
	o, ok := t.m[name]
	if !ok {
		return nil, fault.NotFound(name)
	}

	return o, nil
}

// Has returns true if an operator called name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.m[name]

	return ok
}

// Invoke calls the operator called name with the raw arguments args.
func (t *Table) Invoke(r *T, name string, args []cell.I) (cell.I, error) {
	o, err := t.Get(name)
	if err != nil {
		return nil, err
	}

	return o.Invoke(r, args)
}

// Match returns the sorted names of operators that match the glob pattern.
func (t *Table) Match(pattern string) ([]string, error) {
	return global.Match(t.Names(), pattern)
}

// Names returns the sorted names of all operators.
func (t *Table) Names() []string {
	ns := make([]string, 0, len(t.m))
	for k := range t.m {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}
