// Package persist applies state snapshots to durable storage behind the
// in-memory services. Writes are queued and applied in FIFO order by a single
// goroutine, so callers never wait on storage and the last enqueued snapshot
// for a key is always the one that lands.
package persist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/models"
	"github.com/fatflowers/prayerbook/internal/platform/kv"
	"github.com/fatflowers/prayerbook/pkg/metrics"
)

type Options struct {
	// Timeout bounds one write including its retries.
	Timeout time.Duration
	// Retries is the number of extra attempts after the first failure.
	Retries   uint64
	RetryBase time.Duration
}

type write struct {
	seq   uint64
	key   string
	value []byte // nil deletes the key
}

type Writer struct {
	store   kv.Store
	l       *zap.SugaredLogger
	metrics *metrics.Business
	opts    Options

	mu       sync.Mutex
	queue    []write
	enqueued uint64
	applied  uint64
	progress chan struct{}
	closing  bool

	wake chan struct{}
	done chan struct{}
}

func NewWriter(store kv.Store, l *zap.SugaredLogger, m *metrics.Business, opts Options) *Writer {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.RetryBase <= 0 {
		opts.RetryBase = 100 * time.Millisecond
	}
	w := &Writer{
		store:    store,
		l:        l,
		metrics:  m,
		opts:     opts,
		progress: make(chan struct{}),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue schedules value to be stored under key and returns immediately.
func (w *Writer) Enqueue(key string, value []byte) {
	w.push(key, value)
}

// EnqueueJSON encodes v and schedules it. Encoding failures are logged and
// the write is skipped.
func (w *Writer) EnqueueJSON(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.l.Errorw("encode snapshot failed", "key", key, "err", err)
		return
	}
	w.push(key, b)
}

// Delete schedules removal of key.
func (w *Writer) Delete(key string) {
	w.push(key, nil)
}

func (w *Writer) push(key string, value []byte) {
	w.mu.Lock()
	if w.closing {
		w.mu.Unlock()
		w.l.Warnw("writer closed, dropping snapshot", "key", key)
		return
	}
	w.enqueued++
	w.queue = append(w.queue, write{seq: w.enqueued, key: key, value: value})
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every write enqueued before the call has been applied
// or given up on, or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.enqueued
	w.mu.Unlock()

	for {
		w.mu.Lock()
		if w.applied >= target {
			w.mu.Unlock()
			return nil
		}
		ch := w.progress
		w.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Pending reports the number of queued writes not yet applied.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(w.enqueued - w.applied)
}

// Close stops accepting writes and drains the queue.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closing {
		w.closing = true
		select {
		case w.wake <- struct{}{}:
		default:
		}
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			closing := w.closing
			w.mu.Unlock()
			if closing {
				return
			}
			<-w.wake
			continue
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.apply(item)

		w.mu.Lock()
		w.applied = item.seq
		close(w.progress)
		w.progress = make(chan struct{})
		w.mu.Unlock()
	}
}

func (w *Writer) apply(item write) {
	ctx, cancel := context.WithTimeout(context.Background(), w.opts.Timeout)
	defer cancel()

	attempts := 0
	b := retry.WithMaxRetries(w.opts.Retries, retry.NewExponential(w.opts.RetryBase))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++
		var err error
		if item.value == nil {
			err = w.store.Delete(ctx, item.key)
		} else {
			err = w.store.Set(ctx, item.key, item.value)
		}
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		w.l.Errorw("snapshot write failed, in-memory state stays authoritative",
			"key", item.key, "attempts", attempts, "err", err)
		w.metrics.StorageWriteFailed(models.KeyFamily(item.key))
	}
}
