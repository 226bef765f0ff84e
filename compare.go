package variant

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/rawbytedev/variant/internal/common"
)

// defaultEqual picks the equality of an alternative without an Equaler.
// == is used only where it can not panic; interface fields are checked for
// comparable dynamic values first, and everything else goes through
// reflect.DeepEqual.
func defaultEqual[T any](t reflect.Type) func(a, b unsafe.Pointer) bool {
	switch {
	case common.IsStrictlyComparable(t):
		return func(a, b unsafe.Pointer) bool { return any(*(*T)(a)) == any(*(*T)(b)) }
	case t.Comparable():
		return func(a, b unsafe.Pointer) bool {
			x, y := (*T)(a), (*T)(b)
			if reflect.ValueOf(x).Elem().Comparable() && reflect.ValueOf(y).Elem().Comparable() {
				return any(*x) == any(*y)
			}
			return reflect.DeepEqual(*x, *y)
		}
	default:
		return func(a, b unsafe.Pointer) bool { return reflect.DeepEqual(*(*T)(a), *(*T)(b)) }
	}
}

// defaultHash picks the hash of an alternative without a Hasher. Values
// equal under defaultEqual hash alike: plain values hash the bytes that
// take part in ==, with negative zero folded into positive zero.
func defaultHash[T any](t reflect.Type) func(p unsafe.Pointer) uint64 {
	switch k := t.Kind(); {
	case k == reflect.String:
		return func(p unsafe.Pointer) uint64 { return xxhash.Sum64String(*(*string)(p)) }
	case common.IsBytesKind(t):
		return func(p unsafe.Pointer) uint64 { return xxhash.Sum64(*(*[]byte)(p)) }
	case common.IsPlain(t):
		spans := common.PlainSpans(t)
		return func(p unsafe.Pointer) uint64 { return hashSpans(p, spans) }
	case k == reflect.Func, k == reflect.Chan, k == reflect.Pointer, k == reflect.UnsafePointer:
		// identity, as == compares them
		return func(p unsafe.Pointer) uint64 {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(reflect.ValueOf((*T)(p)).Elem().Pointer()))
			return xxhash.Sum64(b[:])
		}
	default:
		fallback := xxhash.Sum64String(t.String())
		return func(p unsafe.Pointer) uint64 {
			h, err := hashstructure.Hash(*(*T)(p), hashstructure.FormatV2,
				&hashstructure.HashOptions{Hasher: xxhash.New()})
			if err != nil {
				// a func or chan somewhere inside; equal values fail alike
				return fallback
			}
			return h
		}
	}
}

func hashSpans(p unsafe.Pointer, spans []common.Span) uint64 {
	var zero [8]byte
	var d xxhash.Digest
	d.Reset()
	for _, s := range spans {
		b := common.RawBytes(unsafe.Add(p, s.Offset), s.Size)
		if s.Float && common.IsNegativeZero(b) {
			b = zero[:s.Size]
		}
		_, _ = d.Write(b)
	}
	return d.Sum64()
}
