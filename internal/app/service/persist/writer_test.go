package persist

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

func newTestWriter(t *testing.T, store kv.Store, retries uint64) (*Writer, *observer.ObservedLogs, *prometheus.Registry) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	l := zap.New(core).Sugar()
	w := NewWriter(store, l, metrics.NewBusiness(reg, l), Options{
		Timeout:   time.Second,
		Retries:   retries,
		RetryBase: time.Millisecond,
	})
	t.Cleanup(func() { _ = w.Close(context.Background()) })
	return w, logs, reg
}

func TestWriter_AppliesInOrder(t *testing.T) {
	store := kv.NewMemoryStore()
	w, _, _ := newTestWriter(t, store, 0)

	for i := 0; i < 50; i++ {
		w.Enqueue("k", []byte(fmt.Sprintf("%d", i)))
	}
	require.NoError(t, w.Flush(context.Background()))

	v, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, "49", string(v))
	require.Zero(t, w.Pending())
}

func TestWriter_EnqueueJSONAndDelete(t *testing.T) {
	store := kv.NewMemoryStore()
	w, _, _ := newTestWriter(t, store, 0)

	w.EnqueueJSON("a", map[string]bool{"ok": true})
	require.NoError(t, w.Flush(context.Background()))
	v, _ := store.Get(context.Background(), "a")
	require.JSONEq(t, `{"ok":true}`, string(v))

	w.Delete("a")
	require.NoError(t, w.Flush(context.Background()))
	v, _ = store.Get(context.Background(), "a")
	require.Nil(t, v)
}

func TestWriter_EnqueueJSON_EncodeError(t *testing.T) {
	store := kv.NewMemoryStore()
	w, logs, _ := newTestWriter(t, store, 0)

	w.EnqueueJSON("a", func() {})
	require.NoError(t, w.Flush(context.Background()))
	require.Zero(t, store.Writes())
	require.Equal(t, 1, logs.FilterMessage("encode snapshot failed").Len())
}

func TestWriter_RetriesThenGivesUp(t *testing.T) {
	store := kv.NewMemoryStore()
	store.FailWith(errors.New("disk full"))
	w, logs, reg := newTestWriter(t, store, 2)

	w.Enqueue("inst:@wgb_prayers", []byte("[]"))
	require.NoError(t, w.Flush(context.Background()))

	require.Equal(t, 3, store.Writes())
	entries := logs.FilterMessage("snapshot write failed, in-memory state stays authoritative").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(3), entries[0].ContextMap()["attempts"])
	n, err := testutil.GatherAndCount(reg, "prayerbook_storage_write_failures_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestWriter_RecoversWithinRetries(t *testing.T) {
	store := &flakyStore{MemoryStore: kv.NewMemoryStore(), failures: 1}
	w, logs, _ := newTestWriter(t, store, 2)

	w.Enqueue("k", []byte("v"))
	require.NoError(t, w.Flush(context.Background()))

	v, _ := store.Get(context.Background(), "k")
	require.Equal(t, "v", string(v))
	require.Zero(t, logs.FilterMessage("snapshot write failed, in-memory state stays authoritative").Len())
}

func TestWriter_CloseDrainsAndRejects(t *testing.T) {
	store := kv.NewMemoryStore()
	w, logs, _ := newTestWriter(t, store, 0)

	w.Enqueue("k", []byte("1"))
	require.NoError(t, w.Close(context.Background()))
	v, _ := store.Get(context.Background(), "k")
	require.Equal(t, "1", string(v))

	w.Enqueue("k", []byte("2"))
	require.Equal(t, 1, logs.FilterMessage("writer closed, dropping snapshot").Len())
	v, _ = store.Get(context.Background(), "k")
	require.Equal(t, "1", string(v))
}

func TestWriter_FlushHonoursContext(t *testing.T) {
	store := &blockingStore{MemoryStore: kv.NewMemoryStore(), release: make(chan struct{})}
	w, _, _ := newTestWriter(t, store, 0)
	defer close(store.release)

	w.Enqueue("k", []byte("v"))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, w.Flush(ctx), context.DeadlineExceeded)
}

func TestLoadJSON(t *testing.T) {
	store := kv.NewMemoryStore()
	l := zap.NewNop().Sugar()
	ctx := context.Background()

	_, ok := LoadJSON[map[string]int](ctx, store, l, "missing")
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "good", []byte(`{"a":1}`)))
	v, ok := LoadJSON[map[string]int](ctx, store, l, "good")
	require.True(t, ok)
	require.Equal(t, 1, v["a"])

	require.NoError(t, store.Set(ctx, "bad", []byte(`{"a":`)))
	v, ok = LoadJSON[map[string]int](ctx, store, l, "bad")
	require.False(t, ok)
	require.Nil(t, v)
}

type flakyStore struct {
	*kv.MemoryStore
	failures int
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("transient")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type blockingStore struct {
	*kv.MemoryStore
	release chan struct{}
}

func (s *blockingStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.MemoryStore.Set(ctx, key, value)
}
