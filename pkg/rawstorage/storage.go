// Package rawstorage provides the untyped, aligned memory region a variant
// keeps its live alternative in.
//
// This is a very low-level building block. It performs no error checking:
// every function trusts the caller about which type currently lives in the
// region. Use the variant package in application code.
//
// Go's collector needs a precise pointer layout for every allocation, so a
// region can not hold pointer-carrying values of arbitrary types the way a
// C byte buffer could. Storage therefore keeps one aligned byte block shared
// by all pointer-free alternatives, and acquires a region with the
// alternative's own layout when a pointer-carrying value is constructed. A
// Storage never holds more than one region.
package rawstorage

import (
	"reflect"
	"unsafe"

	"github.com/rawbytedev/variant/internal/common"
)

// Layout is the size and alignment of a region.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// MaxLayout returns the smallest layout able to hold every input layout.
func MaxLayout(ls ...Layout) Layout {
	out := Layout{Align: 1}
	for _, l := range ls {
		out.Size = max(out.Size, l.Size)
		out.Align = max(out.Align, l.Align)
	}
	return out
}

// Shape describes how to acquire and clear a region for one type.
type Shape struct {
	typ   reflect.Type // nil when the type carries no pointers
	size  uintptr
	alloc func() unsafe.Pointer
	clear func(unsafe.Pointer)
}

// ShapeOf captures the shape of T.
func ShapeOf[T any]() Shape {
	t := reflect.TypeFor[T]()
	sh := Shape{
		size:  t.Size(),
		clear: func(p unsafe.Pointer) { var zero T; *(*T)(p) = zero },
	}
	if common.HasPointers(t) {
		sh.typ = t
		sh.alloc = func() unsafe.Pointer { return unsafe.Pointer(new(T)) }
	}
	return sh
}

// Plain reports whether the shape lives in the shared byte block.
func (sh Shape) Plain() bool { return sh.typ == nil }

// Size returns the byte size of the shape's type.
func (sh Shape) Size() uintptr { return sh.size }

// zeroBlock backs regions of zero size.
var zeroBlock [8]byte

// Storage is a region sized and aligned for the largest of a fixed set of
// types. The zero value is not usable; use New.
type Storage struct {
	layout Layout
	block  unsafe.Pointer
	shape  reflect.Type // nil while block is the shared byte block
	bytes  unsafe.Pointer
}

// New returns a storage for the given layout. No memory is acquired until
// the first Prepare.
func New(l Layout) Storage {
	if l.Align == 0 {
		l.Align = 1
	}
	return Storage{layout: l}
}

// Layout returns the layout the byte block is acquired with.
func (s *Storage) Layout() Layout { return s.layout }

// Plain reports whether the current region is the shared byte block.
func (s *Storage) Plain() bool { return s.shape == nil }

// Pointer returns the current region, nil before the first Prepare.
func (s *Storage) Pointer() unsafe.Pointer { return s.block }

// Prepare returns a zeroed region able to hold a value of shape sh,
// acquiring a new region if the current one has a different shape.
// Precondition: no live value occupies the region.
func (s *Storage) Prepare(sh Shape) unsafe.Pointer {
	switch {
	case sh.typ == nil:
		s.usePlain()
	case s.shape != sh.typ:
		s.block = sh.alloc()
		s.shape = sh.typ
		return s.block
	}
	sh.clear(s.block)
	return s.block
}

// usePlain makes the byte block the current region. The block is acquired
// once and kept while typed regions come and go.
func (s *Storage) usePlain() {
	if s.bytes == nil {
		if s.layout.Size == 0 {
			s.bytes = unsafe.Pointer(&zeroBlock)
		} else {
			b := AlignedBytes(s.layout.Size, s.layout.Align)
			s.bytes = unsafe.Pointer(&b[0])
		}
	}
	s.block = s.bytes
	s.shape = nil
}

// Construct places val into the region prepared for shape sh and returns a
// pointer to it. Precondition: no live value occupies the region and sh is
// the shape of T.
func Construct[T any](s *Storage, sh Shape, val T) *T {
	p := ObjectPointer[T](s.Prepare(sh))
	*p = val
	return p
}

// Access reinterprets the region as a *T without verifying that a T lives
// there.
func Access[T any](s *Storage) *T {
	return ObjectPointer[T](s.block)
}

// Bytes aliases the byte block. It returns nil when the current region is
// not the shared byte block or nothing was acquired yet.
func (s *Storage) Bytes() []byte {
	if s.shape != nil || s.block == nil {
		return nil
	}
	return common.RawBytes(s.block, s.layout.Size)
}

// CopyBytes copies src's byte block into s. Both storages must have the
// same layout and neither may currently hold a pointer-carrying region.
func (s *Storage) CopyBytes(src *Storage) {
	if src.block == nil {
		return
	}
	s.usePlain()
	copy(s.Bytes(), src.Bytes())
}

// Swap exchanges the regions of s and other.
func (s *Storage) Swap(other *Storage) {
	*s, *other = *other, *s
}

// Release drops every region. Precondition: no live value occupies them.
func (s *Storage) Release() {
	s.block = nil
	s.shape = nil
	s.bytes = nil
}
