package variant

import (
	"reflect"
	"unsafe"

	"github.com/rawbytedev/variant/internal/common"
	"github.com/rawbytedev/variant/pkg/rawstorage"
)

// entry is one slot of a set's dispatch table: the type-erased special
// operations of one alternative. Every function receives regions that the
// caller guarantees hold (or, for destinations of copy/move, are prepared
// for) a value of the alternative.
type entry struct {
	typ         reflect.Type
	index       int
	layout      rawstorage.Layout
	shape       rawstorage.Shape
	trivial     bool
	nothrowMove bool

	newTemp func() unsafe.Pointer
	clear   func(p unsafe.Pointer)
	copyTo  func(dst, src unsafe.Pointer)
	moveTo  func(dst, src unsafe.Pointer) error
	assign  func(dst, src unsafe.Pointer) error
	destroy func(p unsafe.Pointer)
	swap    func(a, b unsafe.Pointer) error
	equal   func(a, b unsafe.Pointer) bool
	hash    func(p unsafe.Pointer) uint64
}

// Descriptor is an alternative type captured with Of, ready to be listed in
// a Set.
type Descriptor struct {
	e *entry
}

// Of describes T as an alternative. The capability probe and the per-type
// entry points are resolved here, once, so that dispatch never inspects the
// type again.
func Of[T any]() Descriptor {
	var probe T
	pp := any(&probe)
	_, cloner := pp.(Cloner[T])
	_, destroyer := pp.(Destroyer)
	_, mover := pp.(Mover[T])
	_, assigner := pp.(Assigner[T])
	_, swapper := pp.(Swapper[T])
	_, equaler := pp.(Equaler[T])
	_, hasher := pp.(Hasher)

	t := reflect.TypeFor[T]()
	e := &entry{
		typ:         t,
		layout:      rawstorage.LayoutOf[T](),
		shape:       rawstorage.ShapeOf[T](),
		trivial:     common.IsPlain(t) && !(cloner || destroyer || mover || assigner || swapper),
		nothrowMove: !mover,
	}

	e.newTemp = func() unsafe.Pointer { return unsafe.Pointer(new(T)) }
	e.clear = func(p unsafe.Pointer) { var zero T; *(*T)(p) = zero }

	if cloner {
		e.copyTo = func(dst, src unsafe.Pointer) { *(*T)(dst) = any((*T)(src)).(Cloner[T]).Clone() }
	} else {
		e.copyTo = func(dst, src unsafe.Pointer) { *(*T)(dst) = *(*T)(src) }
	}

	switch {
	case mover:
		e.moveTo = func(dst, src unsafe.Pointer) error { return any((*T)(dst)).(Mover[T]).MoveFrom((*T)(src)) }
	case e.trivial:
		// plain values move by copy and keep the source intact
		e.moveTo = func(dst, src unsafe.Pointer) error { *(*T)(dst) = *(*T)(src); return nil }
	default:
		e.moveTo = func(dst, src unsafe.Pointer) error {
			var zero T
			*(*T)(dst) = *(*T)(src)
			*(*T)(src) = zero
			return nil
		}
	}

	switch {
	case assigner:
		e.assign = func(dst, src unsafe.Pointer) error {
			var zero T
			s := *(*T)(src)
			*(*T)(src) = zero
			return any((*T)(dst)).(Assigner[T]).Assign(s)
		}
	case e.trivial:
		e.assign = func(dst, src unsafe.Pointer) error { *(*T)(dst) = *(*T)(src); return nil }
	default:
		e.assign = func(dst, src unsafe.Pointer) error {
			var zero T
			*(*T)(dst) = *(*T)(src)
			*(*T)(src) = zero
			return nil
		}
	}

	if destroyer {
		e.destroy = func(p unsafe.Pointer) {
			var zero T
			any((*T)(p)).(Destroyer).Destroy()
			*(*T)(p) = zero
		}
	} else {
		e.destroy = e.clear
	}

	if swapper {
		e.swap = func(a, b unsafe.Pointer) error { return any((*T)(a)).(Swapper[T]).Swap((*T)(b)) }
	} else {
		e.swap = func(a, b unsafe.Pointer) error {
			x, y := (*T)(a), (*T)(b)
			*x, *y = *y, *x
			return nil
		}
	}

	if equaler {
		e.equal = func(a, b unsafe.Pointer) bool { return any((*T)(a)).(Equaler[T]).Equal(*(*T)(b)) }
	} else {
		e.equal = defaultEqual[T](t)
	}

	if hasher {
		e.hash = func(p unsafe.Pointer) uint64 { return any((*T)(p)).(Hasher).Hash() }
	} else {
		e.hash = defaultHash[T](t)
	}

	return Descriptor{e: e}
}

// at returns a copy of the entry positioned at index i of a set.
func (d Descriptor) at(i int) *entry {
	e := *d.e
	e.index = i
	return &e
}
