package libs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_RejectsFourthRequestInWindow(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_WindowDoesNotRefillEarly(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3, time.Hour)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, elapsed := range []time.Duration{21 * time.Minute, 40 * time.Minute, 59 * time.Minute} {
		clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(elapsed)
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, ok, "after %s", elapsed)
	}

	clock = time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_EvictsFinishedWindows(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3, time.Hour)
	l.now = func() time.Time { return clock }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := l.Allow(ctx, ip)
		require.NoError(t, err)
	}
	require.Len(t, l.windows, 3)

	clock = clock.Add(2 * time.Hour)
	_, err := l.Allow(ctx, "10.0.0.4")
	require.NoError(t, err)

	assert.Len(t, l.windows, 1)
	assert.Contains(t, l.windows, "10.0.0.4")
}
