package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/holiday-tracker/internal/cache"
	"github.com/neexbeast/holiday-tracker/internal/holiday"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client, time.Hour), mr
}

func sampleHolidays() []holiday.Holiday {
	return []holiday.Holiday{
		{Date: "2025-01-01", LocalName: "Yılbaşı", Name: "New Year's Day", CountryCode: "TR", IsFixed: true, IsGlobal: true},
		{Date: "2025-05-19", LocalName: "Atatürk'ü Anma, Gençlik ve Spor Bayramı", Name: "Commemoration of Atatürk, Youth and Sports Day", CountryCode: "TR", IsFixed: true, IsGlobal: true},
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "TR", 2025, sampleHolidays()))

	got, err := c.Get(ctx, "TR", 2025)
	require.NoError(t, err)
	assert.Equal(t, sampleHolidays(), got)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "TR", 1999)
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestCache_EmptyYearIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "TR", 2025, []holiday.Holiday{}))

	got, err := c.Get(ctx, "TR", 2025)
	require.NoError(t, err)
	require.NotNil(t, got, "a cached empty year is a hit")
	assert.Empty(t, got)
}

func TestCache_KeyLayout(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), " TR ", 2024, sampleHolidays()))
	assert.True(t, mr.Exists("holidays:tr:2024"))

	got, err := c.Get(context.Background(), "tr", 2024)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCache_Set_NilData(t *testing.T) {
	c, mr := newTestCache(t)
	// Setting nil data should be a no-op, not an error.
	require.NoError(t, c.Set(context.Background(), "TR", 2025, nil))
	assert.False(t, mr.Exists("holidays:tr:2025"))
}

func TestCache_Get_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("holidays:tr:2025", "not-json"))

	_, err := c.Get(context.Background(), "TR", 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "TR", 2025, sampleHolidays()))

	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "TR", 2025)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be expired after TTL")
}

func TestNewCache_DefaultTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewCache(client, 0)
	require.NoError(t, c.Set(context.Background(), "TR", 2025, sampleHolidays()))
	assert.Equal(t, cache.DefaultTTL, mr.TTL("holidays:tr:2025"))
}

func TestCache_ServesCachedFetcher(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "TR", 2025, sampleHolidays()))

	f := holiday.NewCachedFetcher(nil, c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := f.Fetch(ctx, 2025, "TR")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestConnect(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}
