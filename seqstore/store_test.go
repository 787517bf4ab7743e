package seqstore_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/on-the-ground/autoseq_go/autoseq"
	"github.com/on-the-ground/autoseq_go/seqstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fibFormula() autoseq.Formula[int64] {
	return func(n int, h autoseq.View[int64]) int64 {
		return h.At(n-1) + h.At(n-2)
	}
}

func TestRegisterAndTerm(t *testing.T) {
	store := seqstore.New[int64]()
	defer store.Close()

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))

	got, err := store.Term("fib", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(55), got)
}

func TestRegisterDuplicate(t *testing.T) {
	store := seqstore.New[int64]()
	defer store.Close()

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))
	err := store.Register("fib", fibFormula(), 0, 1)
	assert.ErrorIs(t, err, seqstore.ErrExists)
}

func TestDoNotFound(t *testing.T) {
	store := seqstore.New[int64]()
	defer store.Close()

	err := store.Do("missing", func(*autoseq.Sequence[int64]) {})
	assert.ErrorIs(t, err, seqstore.ErrNotFound)

	_, err = store.Term("missing", 0)
	assert.ErrorIs(t, err, seqstore.ErrNotFound)
}

func TestWindowReturnsOwnedCopy(t *testing.T) {
	store := seqstore.New[int64]()
	defer store.Close()

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))

	window, err := store.Window("fib", 3, 8)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 8, 13}, window)

	window[0] = 999
	again, err := store.Window("fib", 3, 8)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 8, 13}, again)
}

func TestSnapshotAllAndNames(t *testing.T) {
	store := seqstore.New[int64](seqstore.WithShards(3))
	defer store.Close()

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))
	require.NoError(t, store.Register("pell", autoseq.Formula[int64](func(n int, h autoseq.View[int64]) int64 {
		return 2*h.At(n-1) + h.At(n-2)
	}), 0, 1))

	_, err := store.Term("fib", 5)
	require.NoError(t, err)
	_, err = store.Term("pell", 4)
	require.NoError(t, err)

	assert.Equal(t, []string{"fib", "pell"}, store.Names())
	assert.Equal(t, 2, store.Len())

	all := store.SnapshotAll()
	assert.Equal(t, []int64{0, 1, 1, 2, 3, 5}, all["fib"])
	assert.Equal(t, []int64{0, 1, 2, 5, 12}, all["pell"])
}

func TestRemove(t *testing.T) {
	store := seqstore.New[int64]()
	defer store.Close()

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))
	require.NoError(t, store.Remove("fib"))
	assert.ErrorIs(t, store.Remove("fib"), seqstore.ErrNotFound)

	// The name is free again, under a fresh entry.
	assert.NoError(t, store.Register("fib", fibFormula(), 0, 1))
}

func TestCloseIsTerminal(t *testing.T) {
	store := seqstore.New[int64]()
	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))

	require.NoError(t, store.Close())
	assert.ErrorIs(t, store.Close(), seqstore.ErrClosed)
	assert.ErrorIs(t, store.Register("other", fibFormula(), 0, 1), seqstore.ErrClosed)
	_, err := store.Term("fib", 0)
	assert.ErrorIs(t, err, seqstore.ErrClosed)

	// Close closed the channel; draining buffered events terminates.
	count := 0
	for range store.Events() {
		count++
	}
	assert.Equal(t, 1, count) // the register event
}

func TestConcurrentTermsAreConfined(t *testing.T) {
	store := seqstore.New[int64](seqstore.WithShards(4))
	defer store.Close()

	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("seq-%d", i)
		require.NoError(t, store.Register(name, fibFormula(), 0, 1))
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("seq-%d", i)
		for j := 0; j < 4; j++ {
			g.Go(func() error {
				got, err := store.Term(name, 20)
				if err != nil {
					return err
				}
				if got != 6765 {
					return fmt.Errorf("got %d, want 6765", got)
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}

func TestEvents(t *testing.T) {
	store := seqstore.New[int64](seqstore.WithEventBuffer(16))

	require.NoError(t, store.Register("fib", fibFormula(), 0, 1))
	_, err := store.Term("fib", 10)
	require.NoError(t, err)
	require.NoError(t, store.Remove("fib"))
	require.NoError(t, store.Close())

	var kinds []seqstore.Kind
	var terms []int
	for ev := range store.Events() {
		kinds = append(kinds, ev.Kind)
		terms = append(terms, ev.Terms)

		_, err := uuid.Parse(ev.EntryID)
		assert.NoError(t, err, "entry id must be a uuid")
		assert.Equal(t, "fib", ev.Name)
		assert.False(t, ev.Span.Start().After(ev.Span.End()))
	}
	assert.Equal(t,
		[]seqstore.Kind{seqstore.KindRegister, seqstore.KindAccess, seqstore.KindRemove},
		kinds,
	)
	assert.Equal(t, []int{2, 11, 11}, terms)
}
