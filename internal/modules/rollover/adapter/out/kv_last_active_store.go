package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	rolloverout "questlog/internal/modules/rollover/port/out"
	"questlog/internal/platform/clock"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVLastActiveStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVLastActiveStore(store kv.Store, logger hclog.Logger) rolloverout.LastActiveStore {
	return &KVLastActiveStore{store: store, logger: logging.OrNull(logger)}
}

// Load treats an unreadable day key as absent, which makes the next check a
// first run.
func (s *KVLastActiveStore) Load(ctx context.Context) (string, bool, error) {
	var day string
	found, err := kv.LoadJSON(ctx, s.store, kv.KeyLastActiveDate, &day)
	if err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("last active date is malformed, ignoring it", "error", err)
			return "", false, nil
		}
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	if !clock.ValidDayKey(day) {
		s.logger.Warn("last active date is not a day key, ignoring it", "value", day)
		return "", false, nil
	}
	return day, true, nil
}

func (s *KVLastActiveStore) Save(ctx context.Context, day string) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyLastActiveDate, day)
}
