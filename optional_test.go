package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalNoneAndSome(t *testing.T) {
	n := None[string]()
	assert.False(t, n.HasValue())
	assert.Equal(t, "fb", n.TryGet("fb"))
	_, ok := n.Value()
	assert.False(t, ok)
	assert.Equal(t, EmptyHash, n.Hash())
	assert.Panics(t, func() { n.Get() })

	s := Some("x")
	assert.True(t, s.HasValue())
	assert.True(t, s.Is("x"))
	assert.Equal(t, "x", *s.Get())
	assert.False(t, s.Equal(n))
	assert.True(t, s.Equal(Some("x")))
}

func TestOptionalSharesSetPerType(t *testing.T) {
	assert.Same(t, None[int]().Variant().Set(), Some(3).Variant().Set())
	assert.NotSame(t, None[int]().Variant().Set(), None[int64]().Variant().Set())
	assert.Equal(t, 1, None[int]().Variant().Set().Len())
}

func TestOptionalLifecycle(t *testing.T) {
	c := &counters{}
	o := None[tracked]()

	require.NoError(t, o.Emplace(tracked{ID: 1, c: c}))
	require.NoError(t, o.Emplace(tracked{ID: 2, c: c}))
	assert.Equal(t, 1, c.assigned)
	assert.Equal(t, 0, c.destroyed)

	cp := o.Clone()
	assert.True(t, cp.Equal(o))
	assert.Equal(t, 1, c.cloned)

	o.Reset()
	assert.False(t, o.HasValue())
	assert.Equal(t, 1, c.destroyed)

	require.NoError(t, o.Swap(cp))
	assert.True(t, o.HasValue())
	assert.False(t, cp.HasValue())
	assert.Equal(t, 2, o.Get().ID)

	require.ErrorIs(t, o.EmplaceWith(func(*tracked) error { return errRigged }), errRigged)
	assert.Equal(t, 2, o.Get().ID)
}

func TestOptionalVisit(t *testing.T) {
	o := Some([]int{1})
	assert.True(t, o.Visit(func(s *[]int) { *s = append(*s, 2) }))
	assert.Equal(t, []int{1, 2}, *o.Get())
	assert.False(t, None[[]int]().Visit(func(*[]int) { t.Fatal("visited empty") }))
}
