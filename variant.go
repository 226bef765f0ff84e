package variant

import (
	"sync"
	"unsafe"

	"github.com/rawbytedev/variant/pkg/rawstorage"
)

// Variant holds at most one value of one of its set's alternatives, in
// storage sized for the largest of them. Variants are created by a Set or
// an Alternative; the zero Variant is not usable.
//
// A Variant must not be copied by value: use Clone.
type Variant struct {
	// cause copy attempts to be caught by `go vet`
	_ [0]sync.Mutex

	set   *Set
	store rawstorage.Storage
	which int
}

// Which returns the index of the held alternative, or Set().Len() when
// empty.
func (v *Variant) Which() int { return v.which }

// HasValue reports whether v holds a value.
func (v *Variant) HasValue() bool { return v.which != v.set.Len() }

// IsEmpty reports whether v holds nothing.
func (v *Variant) IsEmpty() bool { return v.which == v.set.Len() }

// Set returns the set v was created from.
func (v *Variant) Set() *Set { return v.set }

func (v *Variant) sameSet(o *Variant) error {
	if o == nil || v.set != o.set {
		return ErrSetMismatch
	}
	return nil
}

// dispatch invokes fn with the table entry of the held alternative and the
// region holding it. It does nothing when v is empty.
func (v *Variant) dispatch(fn func(e *entry, p unsafe.Pointer)) {
	if v.which == len(v.set.entries) {
		return
	}
	fn(v.set.entries[v.which], v.store.Pointer())
}

// destroy drops the held value, if any.
func (v *Variant) destroy() {
	if v.which == v.set.Len() {
		return
	}
	if !v.set.trivial {
		v.dispatch(func(e *entry, p unsafe.Pointer) { e.destroy(p) })
	}
	v.which = v.set.Len()
}

// Reset destroys the held value, leaving v empty.
func (v *Variant) Reset() { v.destroy() }

// Clone returns a variant holding a copy of v's value.
func (v *Variant) Clone() *Variant {
	out := v.set.New()
	if v.set.trivial {
		out.store.CopyBytes(&v.store)
		out.which = v.which
		return out
	}
	v.dispatch(func(e *entry, p unsafe.Pointer) {
		e.copyTo(out.store.Prepare(e.shape), p)
		out.which = e.index
	})
	return out
}

// Move returns a variant that took over v's value. v keeps holding the same
// alternative in its moved-from state: the zero value, or the untouched value
// for plain alternatives. If the alternative's move fails, the error is
// returned and v is in whatever valid state the failed move left it.
func (v *Variant) Move() (*Variant, error) {
	out := v.set.New()
	if v.set.trivial {
		out.store.CopyBytes(&v.store)
		out.which = v.which
		return out, nil
	}
	var err error
	v.dispatch(func(e *entry, p unsafe.Pointer) {
		dst := out.store.Prepare(e.shape)
		if err = e.moveTo(dst, p); err != nil {
			e.clear(dst)
			return
		}
		out.which = e.index
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom makes v hold a copy of src's value, following the same rules as
// Emplace. Copying an empty variant empties v.
func (v *Variant) CopyFrom(src *Variant) error {
	if err := v.sameSet(src); err != nil {
		return err
	}
	if v == src {
		return nil
	}
	if v.set.trivial {
		v.store.CopyBytes(&src.store)
		v.which = src.which
		return nil
	}
	if src.IsEmpty() {
		v.destroy()
		return nil
	}
	var err error
	src.dispatch(func(e *entry, p unsafe.Pointer) {
		tmp := e.newTemp()
		e.copyTo(tmp, p)
		err = v.emplace(e, valueSource(e, tmp, true))
	})
	return err
}

// MoveFrom makes v take over src's value, following the same rules as
// Emplace. src keeps its alternative in the moved-from state. Moving from
// an empty variant empties v.
func (v *Variant) MoveFrom(src *Variant) error {
	if err := v.sameSet(src); err != nil {
		return err
	}
	if v == src {
		return nil
	}
	if v.set.trivial {
		v.store.CopyBytes(&src.store)
		v.which = src.which
		return nil
	}
	if src.IsEmpty() {
		v.destroy()
		return nil
	}
	var err error
	src.dispatch(func(e *entry, p unsafe.Pointer) {
		err = v.emplace(e, valueSource(e, p, false))
	})
	return err
}

// Equal reports whether v and o are both empty, or hold the same
// alternative with equal values. Variants of different sets are never
// equal.
func (v *Variant) Equal(o *Variant) bool {
	if v.sameSet(o) != nil || v.which != o.which {
		return false
	}
	eq := true
	v.dispatch(func(e *entry, p unsafe.Pointer) {
		eq = e.equal(p, o.store.Pointer())
	})
	return eq
}

// Hash returns the hash of the held value, or EmptyHash when v is empty.
func (v *Variant) Hash() uint64 {
	h := EmptyHash
	v.dispatch(func(e *entry, p unsafe.Pointer) {
		h = e.hash(p)
	})
	return h
}
