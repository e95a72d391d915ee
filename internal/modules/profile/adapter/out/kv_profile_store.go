package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/profile/domain"
	profileout "questlog/internal/modules/profile/port/out"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVProfileStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVProfileStore(store kv.Store, logger hclog.Logger) profileout.ProfileStore {
	return &KVProfileStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVProfileStore) Load(ctx context.Context) (domain.Profile, error) {
	profile := domain.Profile{}
	if _, err := kv.LoadJSON(ctx, s.store, kv.KeyProfile, &profile); err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("profile is malformed, using defaults", "error", err)
			return domain.Profile{}, nil
		}
		return domain.Profile{}, err
	}
	if profile.XP < 0 || profile.XP > domain.MaxXP {
		s.logger.Warn("profile xp out of range, clamping", "xp", profile.XP)
		profile.XP = min(max(profile.XP, 0), domain.MaxXP)
	}
	return profile, nil
}

func (s *KVProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	return kv.SaveJSON(ctx, s.store, kv.KeyProfile, profile)
}
