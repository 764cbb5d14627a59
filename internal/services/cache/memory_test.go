package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpulse/combat-api/internal/services/search"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), time.Minute))

	got, ok := mc.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)
	assert.True(t, mc.Has(ctx, "key"))
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()

	_, ok := mc.Get(context.Background(), "absent")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, ok := mc.Get(ctx, "key")
	assert.False(t, ok)
	assert.False(t, mc.Has(ctx, "key"))
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, mc.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, mc.Delete(ctx, "a"))
	assert.False(t, mc.Has(ctx, "a"))
	assert.True(t, mc.Has(ctx, "b"))

	require.NoError(t, mc.Clear(ctx))
	assert.False(t, mc.Has(ctx, "b"))
	assert.Equal(t, int64(0), mc.Stats().Size)
}

func TestMemoryCacheStats(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), time.Minute))
	mc.Get(ctx, "key")
	mc.Get(ctx, "absent")

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Greater(t, stats.Size, int64(0))
}

func TestSearchKey(t *testing.T) {
	base := search.Query{Text: "Belgrade", Limit: 20, Fuzzy: true, Highlight: true}

	t.Run("same query same key", func(t *testing.T) {
		assert.Equal(t, SearchKey(base), SearchKey(base))
	})

	t.Run("text is case-insensitive", func(t *testing.T) {
		other := base
		other.Text = "belgrade"
		assert.Equal(t, SearchKey(base), SearchKey(other))
	})

	t.Run("filter order does not matter", func(t *testing.T) {
		a := base
		a.Kinds = []search.Kind{search.KindNews, search.KindClub}
		b := base
		b.Kinds = []search.Kind{search.KindClub, search.KindNews}
		assert.Equal(t, SearchKey(a), SearchKey(b))
	})

	t.Run("different filters different keys", func(t *testing.T) {
		filtered := base
		filtered.Categories = []string{"mma"}
		assert.NotEqual(t, SearchKey(base), SearchKey(filtered))

		limited := base
		limited.Limit = 10
		assert.NotEqual(t, SearchKey(base), SearchKey(limited))

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		dated := base
		dated.From = &from
		assert.NotEqual(t, SearchKey(base), SearchKey(dated))
	})

	t.Run("flags change the key", func(t *testing.T) {
		noHighlight := base
		noHighlight.Highlight = false
		assert.NotEqual(t, SearchKey(base), SearchKey(noHighlight))
	})
}

func TestSuggestionKey(t *testing.T) {
	assert.Equal(t, SuggestionKey("Belgrade", 10), SuggestionKey("belgrade", 10))
	assert.NotEqual(t, SuggestionKey("Belgrade", 10), SuggestionKey("Belgrade", 5))
}
