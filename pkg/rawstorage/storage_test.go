package rawstorage

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A int32
	B float64
}

type named struct {
	Name string
	Tags []string
}

func TestMaxLayout(t *testing.T) {
	l := MaxLayout(LayoutOf[int8](), LayoutOf[pair](), LayoutOf[[3]uint16]())
	assert.Equal(t, unsafe.Sizeof(pair{}), l.Size)
	assert.Equal(t, unsafe.Alignof(pair{}), l.Align)

	empty := MaxLayout()
	assert.Equal(t, uintptr(0), empty.Size)
	assert.Equal(t, uintptr(1), empty.Align)
}

func TestAlignedBytes(t *testing.T) {
	for _, align := range []uintptr{1, 2, 4, 8, 16, 64} {
		b := AlignedBytes(24, align)
		require.Len(t, b, 24)
		assert.True(t, IsAligned(uintptr(unsafe.Pointer(&b[0])), align), "align %d", align)
	}
	assert.Nil(t, AlignedBytes(0, 8))
	assert.Equal(t, uintptr(16), AlignUp(9, 8))
	assert.Equal(t, uintptr(8), AlignUp(8, 8))
	assert.Equal(t, uintptr(7), AlignUp(7, 1))
}

func TestConstructAccessPlain(t *testing.T) {
	s := New(MaxLayout(LayoutOf[int64](), LayoutOf[pair]()))
	sh := ShapeOf[pair]()
	require.True(t, sh.Plain())

	p := Construct(&s, sh, pair{A: 7, B: 2.5})
	assert.Equal(t, pair{A: 7, B: 2.5}, *Access[pair](&s))
	assert.Equal(t, unsafe.Pointer(p), s.Pointer())
	assert.True(t, s.Plain())
	assert.Len(t, s.Bytes(), int(s.Layout().Size))

	// another plain alternative reuses the same block
	before := s.Pointer()
	Construct(&s, ShapeOf[int64](), int64(-3))
	assert.Equal(t, before, s.Pointer())
	assert.Equal(t, int64(-3), *Access[int64](&s))
}

func TestPrepareZeroesRegion(t *testing.T) {
	s := New(LayoutOf[uint64]())
	sh := ShapeOf[uint64]()
	Construct(&s, sh, uint64(0xdeadbeef))
	p := s.Prepare(sh)
	assert.Equal(t, uint64(0), *ObjectPointer[uint64](p))
}

func TestPointerShapeAcquiresTypedRegion(t *testing.T) {
	s := New(MaxLayout(LayoutOf[int](), LayoutOf[named]()))
	sh := ShapeOf[named]()
	require.False(t, sh.Plain())

	Construct(&s, sh, named{Name: "a", Tags: []string{"x"}})
	assert.False(t, s.Plain())
	assert.Nil(t, s.Bytes())
	first := s.Pointer()

	runtime.GC()
	assert.Equal(t, named{Name: "a", Tags: []string{"x"}}, *Access[named](&s))

	// same shape again reuses the region
	Construct(&s, sh, named{Name: "b"})
	assert.Equal(t, first, s.Pointer())
	assert.Equal(t, "b", Access[named](&s).Name)
	assert.Nil(t, Access[named](&s).Tags)

	// a plain alternative moves back to the byte block
	Construct(&s, ShapeOf[int](), 5)
	assert.True(t, s.Plain())
	assert.Equal(t, 5, *Access[int](&s))
}

func TestCopyBytesAndSwap(t *testing.T) {
	l := LayoutOf[pair]()
	a, b := New(l), New(l)
	sh := ShapeOf[pair]()
	Construct(&a, sh, pair{A: 1, B: 1})

	b.CopyBytes(&a)
	assert.Equal(t, pair{A: 1, B: 1}, *Access[pair](&b))
	assert.NotEqual(t, a.Pointer(), b.Pointer())

	Access[pair](&b).A = 2
	a.Swap(&b)
	assert.Equal(t, int32(2), Access[pair](&a).A)
	assert.Equal(t, int32(1), Access[pair](&b).A)

	var c Storage = New(l)
	c.CopyBytes(&Storage{layout: l})
	assert.Nil(t, c.Pointer())
}

func TestZeroSizedLayout(t *testing.T) {
	s := New(LayoutOf[struct{}]())
	Construct(&s, ShapeOf[struct{}](), struct{}{})
	assert.NotNil(t, s.Pointer())
	assert.Nil(t, s.Bytes())
	s.Release()
	assert.Nil(t, s.Pointer())
}

func TestPointerCast(t *testing.T) {
	x := uint32(0x01020304)
	p := VoidPointer(&x)
	assert.Equal(t, &x, ObjectPointer[uint32](p))
	arr := PointerCast[[4]byte](&x)
	sum := 0
	for _, b := range arr {
		sum += int(b)
	}
	assert.Equal(t, 10, sum)
}

func TestByteBlockSurvivesTypedRegions(t *testing.T) {
	s := New(MaxLayout(LayoutOf[int64](), LayoutOf[named]()))
	plain, typed := ShapeOf[int64](), ShapeOf[named]()

	Construct(&s, plain, int64(1))
	block := s.Pointer()
	for i := 0; i < 3; i++ {
		Construct(&s, typed, named{Name: "n"})
		assert.NotEqual(t, block, s.Pointer())
		typed.clear(s.Pointer())

		Construct(&s, plain, int64(i))
		assert.Equal(t, block, s.Pointer())
		assert.Equal(t, int64(i), *Access[int64](&s))
	}

	s.Release()
	assert.Nil(t, s.Pointer())
}
