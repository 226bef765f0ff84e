package rawstorage

import "unsafe"

// VoidPointer erases the type of p. It exists to make conversions into the
// raw region explicit at call sites.
func VoidPointer[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

// ObjectPointer gives p the type *T. The caller guarantees that a T lives
// there.
func ObjectPointer[T any](p unsafe.Pointer) *T {
	return (*T)(p)
}

// PointerCast reinterprets p as a *To.
// Be aware that the collector only follows pointers the allocation's own
// layout declares.
func PointerCast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}
