package common

import (
	"reflect"
	"unsafe"
)

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPlain reports whether values of t carry no pointers at any depth, so
// their bytes can be copied, swapped or dropped without the collector's
// involvement.
func IsPlain(t reflect.Type) bool {
	switch k := t.Kind(); {
	case IsFixedKind(k):
		return true
	case k == reflect.Array:
		return t.Len() == 0 || IsPlain(t.Elem())
	case k == reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// HasPointers is the negation of IsPlain.
func HasPointers(t reflect.Type) bool {
	return !IsPlain(t)
}

// IsBytesKind reports whether t is a string or a byte slice.
func IsBytesKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}

// RawBytes aliases n bytes starting at p without copying.
func RawBytes(p unsafe.Pointer, n uintptr) []byte {
	if n == 0 || p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// IsStrictlyComparable reports whether == on values of t can never panic:
// t is comparable and holds no interface at any depth.
func IsStrictlyComparable(t reflect.Type) bool {
	if !t.Comparable() {
		return false
	}
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return IsStrictlyComparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsStrictlyComparable(t.Field(i).Type) {
				return false
			}
		}
	}
	return true
}

// Span is a run of bytes inside a plain value. A float span holds exactly
// one float32 or float64.
type Span struct {
	Offset uintptr
	Size   uintptr
	Float  bool
}

// PlainSpans lists the bytes of the plain type t that == looks at, in
// order. Padding and blank fields are left out, adjacent integer bytes are
// merged, and every float (each half of a complex) gets a span of its own.
func PlainSpans(t reflect.Type) []Span {
	var out []Span
	appendSpans(&out, t, 0)
	return out
}

func appendSpans(out *[]Span, t reflect.Type, base uintptr) {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		*out = append(*out, Span{Offset: base, Size: t.Size(), Float: true})
	case reflect.Complex64, reflect.Complex128:
		half := t.Size() / 2
		*out = append(*out,
			Span{Offset: base, Size: half, Float: true},
			Span{Offset: base + half, Size: half, Float: true})
	case reflect.Array:
		el := t.Elem()
		for i := 0; i < t.Len(); i++ {
			appendSpans(out, el, base+uintptr(i)*el.Size())
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Name != "_" {
				appendSpans(out, f.Type, base+f.Offset)
			}
		}
	default:
		size := t.Size()
		if size == 0 {
			return
		}
		if n := len(*out); n > 0 {
			if last := &(*out)[n-1]; !last.Float && last.Offset+last.Size == base {
				last.Size += size
				return
			}
		}
		*out = append(*out, Span{Offset: base, Size: size})
	}
}

// IsNegativeZero reports whether b, the bytes of a float32 or float64,
// hold -0.
func IsNegativeZero(b []byte) bool {
	switch len(b) {
	case 4:
		return *(*uint32)(unsafe.Pointer(&b[0])) == 1<<31
	case 8:
		return *(*uint64)(unsafe.Pointer(&b[0])) == 1<<63
	default:
		return false
	}
}
