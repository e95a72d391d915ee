package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/focus/domain"
	focusout "questlog/internal/modules/focus/port/out"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVActiveFocusStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVActiveFocusStore(store kv.Store, logger hclog.Logger) focusout.ActiveFocusStore {
	return &KVActiveFocusStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVActiveFocusStore) SaveActive(ctx context.Context, focus domain.ActiveFocus) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyActiveFocus, focus)
}

func (s *KVActiveFocusStore) LoadActive(ctx context.Context) (domain.ActiveFocus, error) {
	var active *domain.ActiveFocus
	if _, err := kv.LoadJSON(ctx, s.store, kv.KeyActiveFocus, &active); err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("active focus is malformed, discarding it", "error", err)
			return domain.ActiveFocus{}, apperrors.ErrNoActiveFocus
		}
		return domain.ActiveFocus{}, err
	}
	if active == nil || active.TaskID == "" || active.StartedAt.IsZero() {
		return domain.ActiveFocus{}, apperrors.ErrNoActiveFocus
	}
	return *active, nil
}

// ClearActive stores null; the key set has no delete primitive.
func (s *KVActiveFocusStore) ClearActive(ctx context.Context) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyActiveFocus, nil)
}
