package variant

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/variant/pkg/rawstorage"
)

// Case handles one alternative during a visit. Build cases with On, OnValue
// or Default.
type Case struct {
	set   *Set
	index int // -1 for Default
	fn    func(p unsafe.Pointer, index int)
}

// On handles alternative a; fn receives a pointer to the value.
func On[T any](a Alternative[T], fn func(*T)) Case {
	return Case{set: a.set, index: a.index, fn: func(p unsafe.Pointer, _ int) { fn((*T)(p)) }}
}

// OnValue handles alternative a; fn receives a copy of the value made with
// the alternative's copy operation.
func OnValue[T any](a Alternative[T], fn func(T)) Case {
	e := a.entry()
	return Case{set: a.set, index: a.index, fn: func(p unsafe.Pointer, _ int) {
		var out T
		e.copyTo(rawstorage.VoidPointer(&out), p)
		fn(out)
	}}
}

// Default handles every alternative without a case of its own; fn receives
// the held index.
func Default(fn func(index int)) Case {
	return Case{index: -1, fn: func(_ unsafe.Pointer, i int) { fn(i) }}
}

// Visitor is a dispatch table with one handler per alternative of a set,
// built once and applied to any number of variants of that set.
type Visitor struct {
	set   *Set
	table []func(p unsafe.Pointer, index int)
}

// NewVisitor builds a visitor from cases. A later case for the same
// alternative replaces an earlier one. It returns ErrSetMismatch if a case
// was built for another set.
func NewVisitor(s *Set, cases ...Case) (*Visitor, error) {
	vis := &Visitor{set: s, table: make([]func(unsafe.Pointer, int), s.Len())}
	var fallback func(unsafe.Pointer, int)
	for _, c := range cases {
		switch {
		case c.index < 0:
			fallback = c.fn
		case c.set != s:
			return nil, fmt.Errorf("case for alternative %d: %w", c.index, ErrSetMismatch)
		default:
			vis.table[c.index] = c.fn
		}
	}
	if fallback != nil {
		for i, fn := range vis.table {
			if fn == nil {
				vis.table[i] = fallback
			}
		}
	}
	return vis, nil
}

// Apply calls the handler of v's held alternative with a reference to the
// value. It reports whether a handler ran; an empty variant runs none.
func (vis *Visitor) Apply(v *Variant) bool {
	if v.set != vis.set {
		return false
	}
	ran := false
	v.dispatch(func(e *entry, p unsafe.Pointer) {
		if fn := vis.table[e.index]; fn != nil {
			fn(p, e.index)
			ran = true
		}
	})
	return ran
}

// ApplyMove moves the held value out of v, resets v, and calls the handler
// with the moved value. It reports whether a handler ran.
func (vis *Visitor) ApplyMove(v *Variant) (bool, error) {
	if v.set != vis.set {
		return false, ErrSetMismatch
	}
	var (
		e   *entry
		tmp unsafe.Pointer
		err error
	)
	v.dispatch(func(held *entry, p unsafe.Pointer) {
		e = held
		tmp = held.newTemp()
		if err = held.moveTo(tmp, p); err != nil {
			held.clear(tmp)
		}
	})
	if e == nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	v.destroy()
	fn := vis.table[e.index]
	if fn == nil {
		e.destroy(tmp)
		return false, nil
	}
	fn(tmp, e.index)
	return true, nil
}

// Visit applies the cases to v by reference. Cases built for another set
// are ignored.
func (v *Variant) Visit(cases ...Case) bool {
	vis, err := NewVisitor(v.set, filterCases(v.set, cases)...)
	if err != nil {
		return false
	}
	return vis.Apply(v)
}

// VisitMove moves the held value out of v, resets v and applies the cases
// to the moved value.
func (v *Variant) VisitMove(cases ...Case) (bool, error) {
	vis, err := NewVisitor(v.set, filterCases(v.set, cases)...)
	if err != nil {
		return false, err
	}
	return vis.ApplyMove(v)
}

func filterCases(s *Set, cases []Case) []Case {
	out := cases[:0:0]
	for _, c := range cases {
		if c.index < 0 || c.set == s {
			out = append(out, c)
		}
	}
	return out
}
