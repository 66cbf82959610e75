package persist

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/internal/platform/kv"
)

// LoadJSON decodes the record under key. It reports false when the key is
// absent, unreadable or corrupt; the caller then keeps its defaults.
func LoadJSON[T any](ctx context.Context, store kv.Store, l *zap.SugaredLogger, key string) (T, bool) {
	var v T
	raw, err := store.Get(ctx, key)
	if err != nil {
		l.Errorw("load failed, using defaults", "key", key, "err", err)
		return v, false
	}
	if raw == nil {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		l.Errorw("stored record is corrupt, using defaults", "key", key, "err", err)
		var zero T
		return zero, false
	}
	return v, true
}
