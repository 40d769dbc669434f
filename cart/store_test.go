package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb), mr
}

func TestAddIsIdempotentByID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, "u1", Item{ID: "b1", Title: "Dune", Price: 100})
	require.NoError(t, err)
	require.True(t, added)

	// 同一 ID 再加一次：no-op
	added, err = s.Add(ctx, "u1", Item{ID: "b1", Title: "Dune", Price: 100})
	require.NoError(t, err)
	require.False(t, added)

	items, err := s.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestRemoveDropsTheEntry(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", Item{ID: "b1", Title: "Dune", Price: 100})
	require.NoError(t, err)
	_, err = s.Add(ctx, "u1", Item{ID: "b2", Title: "Emma", Price: 50})
	require.NoError(t, err)

	kept, err := s.Remove(ctx, "u1", "b1")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Equal(t, "b2", kept[0].ID)
}

func TestClearDeletesTheStoredKey(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", Item{ID: "b1", Title: "Dune", Price: 100})
	require.NoError(t, err)
	require.True(t, mr.Exists("cart:items:u1"))

	require.NoError(t, s.Clear(ctx, "u1"))
	require.False(t, mr.Exists("cart:items:u1"))

	items, err := s.Items(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "u1", Item{ID: "b1", Title: "Dune", Price: 100})
	require.NoError(t, err)

	items, err := s.Items(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, items)
}
