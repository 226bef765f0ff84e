package variant

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/variant/pkg/rawstorage"
)

// Alternative is a typed handle on one alternative of a set. A handle can
// only be obtained for a member type, so code written against handles can
// not name a type outside the set.
type Alternative[T any] struct {
	set   *Set
	index int
}

// IndexOf returns the position of T in s, or s.Len() if T is not an
// alternative.
func IndexOf[T any](s *Set) int {
	if i, ok := s.byType[reflect.TypeFor[T]()]; ok {
		return i
	}
	return s.Len()
}

// Lookup returns the handle of T in s.
func Lookup[T any](s *Set) (Alternative[T], error) {
	i := IndexOf[T](s)
	if i == s.Len() {
		return Alternative[T]{}, ErrNotAlternative
	}
	return Alternative[T]{set: s, index: i}, nil
}

// MustLookup is like Lookup but panics if T is not an alternative of s.
func MustLookup[T any](s *Set) Alternative[T] {
	a, err := Lookup[T](s)
	if err != nil {
		panic(err)
	}
	return a
}

// Index returns the position of the alternative in its set.
func (a Alternative[T]) Index() int { return a.index }

// Set returns the set the alternative belongs to.
func (a Alternative[T]) Set() *Set { return a.set }

func (a Alternative[T]) entry() *entry { return a.set.entries[a.index] }

func (a Alternative[T]) member(v *Variant) bool {
	return v != nil && a.set != nil && v.set == a.set
}

// New returns a variant holding val.
func (a Alternative[T]) New(val T) *Variant {
	v := a.set.New()
	rawstorage.Construct(&v.store, a.entry().shape, val)
	v.which = a.index
	return v
}

// Contains reports whether v currently holds this alternative.
func (a Alternative[T]) Contains(v *Variant) bool {
	return a.member(v) && v.which == a.index
}

// Get returns a pointer to the held value. Calling Get while another
// alternative (or nothing) is held is a programming error; Get panics with
// an *AccessError.
func (a Alternative[T]) Get(v *Variant) *T {
	if !a.Contains(v) {
		if !a.member(v) {
			panic(fmt.Errorf("get alternative %d: %w", a.index, ErrSetMismatch))
		}
		panic(&AccessError{Want: a.index, Held: v.which})
	}
	return rawstorage.Access[T](&v.store)
}

// Value returns a copy of the held value and true, or the zero value and
// false when the alternative is not held.
func (a Alternative[T]) Value(v *Variant) (T, bool) {
	var out T
	if !a.Contains(v) {
		return out, false
	}
	a.entry().copyTo(rawstorage.VoidPointer(&out), v.store.Pointer())
	return out, true
}

// TryGet returns a copy of the held value, or fallback when the alternative
// is not held.
func (a Alternative[T]) TryGet(v *Variant, fallback T) T {
	if out, ok := a.Value(v); ok {
		return out
	}
	return fallback
}

// Is reports whether v holds this alternative with a value equal to val.
func (a Alternative[T]) Is(v *Variant, val T) bool {
	if !a.Contains(v) {
		return false
	}
	return a.entry().equal(v.store.Pointer(), rawstorage.VoidPointer(&val))
}

// Emplace makes v hold val, taking ownership of it. If v already holds this
// alternative the value is assigned over the existing one in place.
func (a Alternative[T]) Emplace(v *Variant, val T) error {
	if !a.member(v) {
		return ErrSetMismatch
	}
	e := a.entry()
	return v.emplace(e, valueSource(e, rawstorage.VoidPointer(&val), true))
}

// EmplaceWith makes v hold a value built by init, which receives a zero T.
// An error from init is returned unchanged. When the held value belongs to
// another alternative and T's move can not fail, the new value is built
// aside first and v is left untouched on error; otherwise the old value is
// dropped before init runs and v is left empty on error.
func (a Alternative[T]) EmplaceWith(v *Variant, init func(*T) error) error {
	if !a.member(v) {
		return ErrSetMismatch
	}
	return v.emplace(a.entry(), source{
		construct: func(dst unsafe.Pointer) error { return init((*T)(dst)) },
		fallible:  true,
	})
}

// Contains reports whether v holds a T.
func Contains[T any](v *Variant) bool {
	return v.which != v.set.Len() && IndexOf[T](v.set) == v.which
}

// Get returns a pointer to the held T. It panics if T is not an alternative
// of v's set or is not held.
func Get[T any](v *Variant) *T {
	return MustLookup[T](v.set).Get(v)
}

// TryGet returns a copy of the held T, or fallback.
func TryGet[T any](v *Variant, fallback T) T {
	a, err := Lookup[T](v.set)
	if err != nil {
		return fallback
	}
	return a.TryGet(v, fallback)
}

// Emplace makes v hold val. It returns ErrNotAlternative if T is not an
// alternative of v's set.
func Emplace[T any](v *Variant, val T) error {
	a, err := Lookup[T](v.set)
	if err != nil {
		return err
	}
	return a.Emplace(v, val)
}
