package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beatforge/backbeat/internal/errs"
)

type rec struct {
	Name string
	N    int
}

func TestTable_InsertGetDelete(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()

	require.NoError(t, tbl.Insert("a", rec{Name: "first"}))
	got, ok := tbl.Get("a")
	require.True(t, ok)
	require.Equal(t, "first", got.Name)

	err := tbl.Insert("a", rec{Name: "second"})
	require.ErrorIs(t, err, errs.ErrConflict)

	// the conflicting insert must not clobber the original
	got, _ = tbl.Get("a")
	require.Equal(t, "first", got.Name)

	require.NoError(t, tbl.Delete("a"))
	_, ok = tbl.Get("a")
	require.False(t, ok)
	require.ErrorIs(t, tbl.Delete("a"), errs.ErrNotFound)
}

func TestTable_ListInsertionOrder(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()
	for i := 0; i < 5; i++ {
		require.NoError(t, tbl.Insert(fmt.Sprintf("k%d", i), rec{N: i}))
	}
	require.NoError(t, tbl.Delete("k2"))

	list := tbl.List()
	require.Len(t, list, 4)
	want := []int{0, 1, 3, 4}
	for i, r := range list {
		require.Equal(t, want[i], r.N)
	}
}

func TestTable_Update(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()
	require.NoError(t, tbl.Insert("a", rec{Name: "x", N: 1}))

	got, err := tbl.Update("a", func(r *rec) { r.N = 2 })
	require.NoError(t, err)
	require.Equal(t, 2, got.N)
	require.Equal(t, "x", got.Name)

	_, err = tbl.Update("missing", func(r *rec) {})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTable_Find(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()
	require.NoError(t, tbl.Insert("a", rec{Name: "alpha"}))
	require.NoError(t, tbl.Insert("b", rec{Name: "beta"}))

	got, ok := tbl.Find(func(r rec) bool { return r.Name == "beta" })
	require.True(t, ok)
	require.Equal(t, "beta", got.Name)

	_, ok = tbl.Find(func(r rec) bool { return r.Name == "gamma" })
	require.False(t, ok)
}

// Two concurrent creates for the same key must not both succeed.
func TestTable_ConcurrentInsertSameKey(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()

	const n = 32
	var wg sync.WaitGroup
	errsCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errsCh <- tbl.Insert("same", rec{N: i})
		}(i)
	}
	wg.Wait()
	close(errsCh)

	won := 0
	for err := range errsCh {
		if err == nil {
			won++
		} else {
			require.True(t, errors.Is(err, errs.ErrConflict))
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, 1, tbl.Len())
}

func TestTable_ConcurrentMixedOps(t *testing.T) {
	t.Parallel()
	tbl := NewTable[rec]()
	require.NoError(t, tbl.Insert("base", rec{}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = tbl.Insert(fmt.Sprintf("k%d", i), rec{N: i})
			_, _ = tbl.Update("base", func(r *rec) { r.N++ })
			_ = tbl.List()
			_, _ = tbl.Get("base")
		}(i)
	}
	wg.Wait()

	got, ok := tbl.Get("base")
	require.True(t, ok)
	require.Equal(t, 16, got.N)
	require.Equal(t, 17, tbl.Len())
}

func TestNew_EmptyTables(t *testing.T) {
	t.Parallel()
	st := New()
	require.Zero(t, st.Users.Len())
	require.Zero(t, st.Songs.Len())
	require.Zero(t, st.Entitlements.Len())
	require.Zero(t, st.Sessions.Len())
	require.Zero(t, st.Performances.Len())
	require.Zero(t, st.Purchases.Len())
	require.Zero(t, st.Admins.Len())
}
