package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripflow/pkg/mapkit"
)

func testEngine() *mapkit.Engine {
	loader := mapkit.NewLoader(func(ctx context.Context, url string) error { return nil })
	return mapkit.NewEngine(loader, nil)
}

func TestPutGetDelete(t *testing.T) {
	store := NewMapSessions(time.Hour)
	engine := testEngine()

	store.Put("s1", engine)
	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Same(t, engine, got)
	assert.Equal(t, 1, store.Len())

	store.Delete("s1")
	_, ok = store.Get("s1")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestGetUnknownSession(t *testing.T) {
	store := NewMapSessions(time.Hour)
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestExpiredSessionDroppedOnAccess(t *testing.T) {
	store := NewMapSessions(10 * time.Millisecond)
	store.Put("s1", testEngine())

	time.Sleep(25 * time.Millisecond)
	_, ok := store.Get("s1")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestGetRefreshesTTL(t *testing.T) {
	store := NewMapSessions(60 * time.Millisecond)
	store.Put("s1", testEngine())

	// Keep touching the session across what would otherwise be its lifetime.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, ok := store.Get("s1")
		require.True(t, ok, "touch %d", i)
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	store := NewMapSessions(0)
	store.Put("s1", testEngine())
	_, ok := store.Get("s1")
	assert.True(t, ok)
}
