package dailytips

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowForAfterAnchor(t *testing.T) {
	now := time.Date(2024, 3, 12, 14, 30, 0, 0, time.UTC)
	window := WindowFor(now)
	require.Equal(t, time.Date(2024, 3, 12, 6, 0, 0, 0, time.UTC), window.Start)
	require.Equal(t, time.Date(2024, 3, 13, 5, 59, 59, 0, time.UTC), window.End)
	require.True(t, window.Contains(now))
}

func TestWindowForBeforeAnchor(t *testing.T) {
	now := time.Date(2024, 3, 12, 4, 15, 0, 0, time.UTC)
	window := WindowFor(now)
	require.Equal(t, time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC), window.Start)
	require.Equal(t, time.Date(2024, 3, 12, 5, 59, 59, 0, time.UTC), window.End)
	require.True(t, window.Contains(now))
}

func TestWindowBoundaryTieBreak(t *testing.T) {
	lastSecond := time.Date(2024, 3, 12, 5, 59, 59, 0, time.UTC)
	firstSecond := time.Date(2024, 3, 12, 6, 0, 0, 0, time.UTC)

	old := WindowFor(lastSecond)
	fresh := WindowFor(firstSecond)

	require.Equal(t, lastSecond, old.End)
	require.Equal(t, firstSecond, fresh.Start)
	require.True(t, fresh.Start.After(old.End))
	require.False(t, old.Contains(firstSecond))
	require.False(t, fresh.Contains(lastSecond))
}

func TestWindowAtExactAnchor(t *testing.T) {
	anchor := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	window := WindowFor(anchor)
	require.Equal(t, anchor, window.Start)
}

func TestDaySeedFollowsWindowStart(t *testing.T) {
	// 02:00 on Feb 2 still belongs to the Feb 1 window, so the seed is Feb 1's.
	now := time.Date(2024, 2, 2, 2, 0, 0, 0, time.UTC)
	window := WindowFor(now)
	require.Equal(t, 32, window.DaySeed())
}
