package variant

import (
	"reflect"
	"sync"
)

// optionalSets caches one single-alternative set per type.
var optionalSets sync.Map // reflect.Type -> *Union1[T]

func optionalOf[T any]() Alternative[T] {
	t := reflect.TypeFor[T]()
	if u, ok := optionalSets.Load(t); ok {
		return u.(*Union1[T]).Alt0
	}
	u, _ := optionalSets.LoadOrStore(t, NewUnion1[T](Options{}))
	return u.(*Union1[T]).Alt0
}

// Optional is either a T or nothing. It is a variant of a single
// alternative and behaves exactly like one.
type Optional[T any] struct {
	alt Alternative[T]
	v   *Variant
}

// None returns an empty optional.
func None[T any]() *Optional[T] {
	alt := optionalOf[T]()
	return &Optional[T]{alt: alt, v: alt.set.New()}
}

// Some returns an optional holding val.
func Some[T any](val T) *Optional[T] {
	alt := optionalOf[T]()
	return &Optional[T]{alt: alt, v: alt.New(val)}
}

// Variant exposes the underlying single-alternative variant.
func (o *Optional[T]) Variant() *Variant { return o.v }

// HasValue reports whether o holds a value.
func (o *Optional[T]) HasValue() bool { return o.v.HasValue() }

// Get returns a pointer to the value. It panics with an *AccessError when o
// is empty.
func (o *Optional[T]) Get() *T { return o.alt.Get(o.v) }

// Value returns a copy of the value and whether there was one.
func (o *Optional[T]) Value() (T, bool) { return o.alt.Value(o.v) }

// TryGet returns a copy of the value, or fallback when empty.
func (o *Optional[T]) TryGet(fallback T) T { return o.alt.TryGet(o.v, fallback) }

// Emplace makes o hold val.
func (o *Optional[T]) Emplace(val T) error { return o.alt.Emplace(o.v, val) }

// EmplaceWith makes o hold a value built by init.
func (o *Optional[T]) EmplaceWith(init func(*T) error) error {
	return o.alt.EmplaceWith(o.v, init)
}

// Reset destroys the value, if any.
func (o *Optional[T]) Reset() { o.v.Reset() }

// Clone returns an optional holding a copy of o's value.
func (o *Optional[T]) Clone() *Optional[T] {
	return &Optional[T]{alt: o.alt, v: o.v.Clone()}
}

// Swap exchanges the contents of o and other.
func (o *Optional[T]) Swap(other *Optional[T]) error { return Swap(o.v, other.v) }

// Equal reports whether both are empty or both hold equal values.
func (o *Optional[T]) Equal(other *Optional[T]) bool { return o.v.Equal(other.v) }

// Is reports whether o holds a value equal to val.
func (o *Optional[T]) Is(val T) bool { return o.alt.Is(o.v, val) }

// Hash returns the hash of the value, or EmptyHash.
func (o *Optional[T]) Hash() uint64 { return o.v.Hash() }

// Visit calls fn with the value when there is one, and reports whether it
// ran.
func (o *Optional[T]) Visit(fn func(*T)) bool { return o.v.Visit(On(o.alt, fn)) }
