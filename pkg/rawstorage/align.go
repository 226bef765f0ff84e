package rawstorage

import "unsafe"

// AlignUp rounds n up to the nearest multiple of align. align must be a
// power of two.
func AlignUp(n, align uintptr) uintptr {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr, align uintptr) bool {
	if align <= 1 {
		return true
	}
	return addr&(align-1) == 0
}

// AlignedBytes allocates a byte slice of the given size whose first element
// sits on an align boundary. The backing array is over-allocated by at most
// align-1 bytes.
func AlignedBytes(size, align uintptr) []byte {
	if size == 0 {
		return nil
	}
	if align <= 1 {
		return make([]byte, size)
	}
	buf := make([]byte, size+align-1)

	ptr := uintptr(unsafe.Pointer(&buf[0]))
	offset := AlignUp(ptr, align) - ptr
	return buf[offset : offset+size : offset+size]
}
