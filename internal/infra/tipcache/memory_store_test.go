package tipcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

func sampleTips(title string) dailytips.TipsByCategory {
	return dailytips.TipsByCategory{
		dailytips.CategoryDiet: {{Title: title, ShortDescription: "s", LongDescription: "l", Category: dailytips.CategoryDiet}},
	}
}

func TestMemoryStoreLookupMissThenHit(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	window := dailytips.WindowFor(now)

	_, found, err := store.Lookup(context.Background(), 7, now)
	require.NoError(t, err)
	require.False(t, found)

	_, err = store.Store(context.Background(), 7, window, sampleTips("first"))
	require.NoError(t, err)

	entry, found, err := store.Lookup(context.Background(), 7, now)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "first", entry.Tips[dailytips.CategoryDiet][0].Title)

	// Another user's window stays empty.
	_, found, err = store.Lookup(context.Background(), 8, now)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreFirstWriterWins(t *testing.T) {
	store := NewMemoryStore()
	window := dailytips.WindowFor(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	first, err := store.Store(context.Background(), 7, window, sampleTips("first"))
	require.NoError(t, err)

	second, err := store.Store(context.Background(), 7, window, sampleTips("second"))
	require.NoError(t, err)
	require.Equal(t, first.Tips, second.Tips)
	require.Equal(t, 1, store.Len())
}

func TestMemoryStoreConcurrentStoresKeepOneEntry(t *testing.T) {
	store := NewMemoryStore()
	window := dailytips.WindowFor(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Store(context.Background(), 7, window, sampleTips("racer"))
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, store.Len())
}

func TestMemoryStorePurgeExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	oldWindow := dailytips.WindowFor(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	liveWindow := dailytips.WindowFor(time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))
	_, err := store.Store(ctx, 7, oldWindow, sampleTips("old"))
	require.NoError(t, err)
	_, err = store.Store(ctx, 7, liveWindow, sampleTips("live"))
	require.NoError(t, err)

	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	purged, err := store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, purged)

	entry, found, err := store.Lookup(ctx, 7, now)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "live", entry.Tips[dailytips.CategoryDiet][0].Title)

	// Idempotent.
	purged, err = store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	require.Zero(t, purged)
}
