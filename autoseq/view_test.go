package autoseq_test

import (
	"testing"

	"github.com/on-the-ground/autoseq_go/autoseq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewAccessors(t *testing.T) {
	fib := fibonacci()
	fib.PrefetchUpTo(10)

	v := fib.View()
	require.Equal(t, 11, v.Len())
	assert.Equal(t, uint64(0), v.Front())
	assert.Equal(t, uint64(55), v.Back())
	assert.Equal(t, uint64(8), v.At(6))

	var got []uint64
	for i, term := range v.All() {
		assert.Equal(t, fib.Get(i), term)
		got = append(got, term)
	}
	assert.Equal(t, v.Snapshot(), got)
}

func TestViewNeverExtends(t *testing.T) {
	fib := fibonacci()
	v := fib.View()
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2, fib.Len())
}

func TestViewStaleAfterRealloc(t *testing.T) {
	fib := fibonacci()
	fib.Reserve(32)
	fib.PrefetchUpTo(10)

	v := fib.View()
	assert.False(t, v.Stale())

	// In-capacity extension does not detach the view.
	fib.PrefetchUpTo(20)
	assert.False(t, v.Stale())

	// Reallocating extension does.
	fib.PrefetchUpTo(100)
	assert.True(t, v.Stale())

	// Detached, but still readable: the old array is kept alive.
	assert.Equal(t, 11, v.Len())
	assert.Equal(t, uint64(55), v.Back())
}

func TestViewStaleAfterDrain(t *testing.T) {
	fib := fibonacci()
	fib.PrefetchUpTo(5)

	v := fib.View()
	fib.Drain()
	assert.True(t, v.Stale())
}

func TestEmptyViewPanics(t *testing.T) {
	fib := fibonacci()
	empty := fib.Slice(1, 1)

	assert.Panics(t, func() { empty.Front() })
	assert.Panics(t, func() { empty.Back() })
	assert.Panics(t, func() { empty.At(0) })
}

func TestZeroViewIsEmptyAndFresh(t *testing.T) {
	var v autoseq.View[int]
	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Stale())
	assert.Empty(t, v.Snapshot())
}
