package installation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/app/service/persist"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/clock"
	"github.com/fatflowers/prayerbook/pkg/types"
)

func newRegistry(t *testing.T) (*Registry, *kv.MemoryStore, *persist.Writer) {
	t.Helper()
	store := kv.NewMemoryStore()
	l := zap.NewNop().Sugar()
	w := persist.NewWriter(store, l, nil, persist.Options{Timeout: time.Second, RetryBase: time.Millisecond})
	t.Cleanup(func() { _ = w.Close(context.Background()) })
	c := clock.NewManual(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	return NewRegistry(store, w, c, l, nil), store, w
}

func TestValidID(t *testing.T) {
	require.True(t, ValidID("abc-DEF_123"))
	require.True(t, ValidID(strings.Repeat("a", 64)))
	require.False(t, ValidID(""))
	require.False(t, ValidID(strings.Repeat("a", 65)))
	require.False(t, ValidID("a:b"))
	require.False(t, ValidID("../x"))
}

func TestSession_CachedPerInstallation(t *testing.T) {
	r, _, _ := newRegistry(t)
	ctx := context.Background()

	a1, err := r.Session(ctx, "a")
	require.NoError(t, err)
	a2, err := r.Session(ctx, "a")
	require.NoError(t, err)
	b, err := r.Session(ctx, "b")
	require.NoError(t, err)

	require.Same(t, a1, a2)
	require.NotSame(t, a1, b)
	require.Equal(t, 2, r.Len())

	_, err = r.Session(ctx, "bad id")
	require.ErrorIs(t, err, ErrInvalidInstallationID)
}

func TestSession_TenantsAreIsolated(t *testing.T) {
	r, store, w := newRegistry(t)
	ctx := context.Background()

	a, _ := r.Session(ctx, "a")
	b, _ := r.Session(ctx, "b")
	require.NoError(t, a.Tracker.RecordUse(types.FeatureCardDownload))
	_, err := a.Store.AddFolder("Evening")
	require.NoError(t, err)

	require.False(t, a.Tracker.CanUse(types.FeatureCardDownload))
	require.True(t, b.Tracker.CanUse(types.FeatureCardDownload))
	require.Empty(t, b.Store.Folders())

	require.NoError(t, w.Flush(ctx))
	require.Contains(t, store.Keys(), "a:@wgb_folders")
	require.NotContains(t, store.Keys(), "b:@wgb_folders")
}

func TestSession_ConcurrentFirstAccessLoadsOnce(t *testing.T) {
	r, _, _ := newRegistry(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	got := make([]*Session, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := r.Session(ctx, "same")
			require.NoError(t, err)
			got[i] = s
		}(i)
	}
	wg.Wait()
	for _, s := range got {
		require.Same(t, got[0], s)
	}
}

func TestSession_ReadOnlyAccessWritesNothing(t *testing.T) {
	r, store, w := newRegistry(t)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		s, err := r.Session(ctx, fmt.Sprintf("reader-%d", i))
		require.NoError(t, err)
		_ = s.Store.Profile()
		_ = s.Tracker.Snapshot()
	}
	require.NoError(t, w.Flush(ctx))
	require.Zero(t, store.Writes())
	require.Empty(t, store.Keys())
}

func TestSweep_EvictsIdleSessionsAfterFlush(t *testing.T) {
	r, _, _ := newRegistry(t)
	ctx := context.Background()
	c := r.clock.(*clock.Manual)

	a, err := r.Session(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, a.Tracker.RecordUse(types.FeatureAudioListen))
	_, err = a.Store.AddFolder("Morning")
	require.NoError(t, err)
	_, err = r.Session(ctx, "b")
	require.NoError(t, err)

	require.Zero(t, r.Sweep(ctx), "nothing is idle yet")

	c.Advance(DefaultIdleTTL - time.Minute)
	_, err = r.Session(ctx, "b")
	require.NoError(t, err)
	c.Advance(2 * time.Minute)

	require.Equal(t, 1, r.Sweep(ctx))
	require.Equal(t, 1, r.Len())

	// a reload sees what the evicted session wrote
	again, err := r.Session(ctx, "a")
	require.NoError(t, err)
	require.NotSame(t, a, again)
	require.False(t, again.Tracker.CanUse(types.FeatureAudioListen))
	require.Len(t, again.Store.Folders(), 1)
}

func TestSweep_BoundsManyOneOffInstallations(t *testing.T) {
	r, _, _ := newRegistry(t)
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		_, err := r.Session(ctx, fmt.Sprintf("id-%d", i))
		require.NoError(t, err)
	}
	require.Equal(t, 500, r.Len())

	r.clock.(*clock.Manual).Advance(DefaultIdleTTL + time.Second)
	require.Equal(t, 500, r.Sweep(ctx))
	require.Zero(t, r.Len())
}

func TestSweep_SkipsWhenFlushIsCancelled(t *testing.T) {
	store := &stallingStore{MemoryStore: kv.NewMemoryStore(), release: make(chan struct{})}
	l := zap.NewNop().Sugar()
	w := persist.NewWriter(store, l, nil, persist.Options{Timeout: time.Minute, RetryBase: time.Millisecond})
	t.Cleanup(func() {
		close(store.release)
		_ = w.Close(context.Background())
	})
	c := clock.NewManual(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	r := NewRegistry(store, w, c, l, nil)

	s, err := r.Session(context.Background(), "a")
	require.NoError(t, err)
	require.NoError(t, s.Tracker.RecordUse(types.FeatureCardDownload))
	c.Advance(DefaultIdleTTL + time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Zero(t, r.Sweep(ctx))
	require.Equal(t, 1, r.Len())
}

// stallingStore holds every Set until release is closed.
type stallingStore struct {
	*kv.MemoryStore
	release chan struct{}
}

func (s *stallingStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.MemoryStore.Set(ctx, key, value)
}
