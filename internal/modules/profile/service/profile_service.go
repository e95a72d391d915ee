package service

import (
	"context"
	"fmt"
	"strings"

	"questlog/internal/modules/profile/domain"
	profileout "questlog/internal/modules/profile/port/out"
	"questlog/internal/platform/clock"
	apperrors "questlog/internal/platform/errors"
)

type ProfileService struct {
	clock clock.Clock
	store profileout.ProfileStore
}

func NewProfileService(clock clock.Clock, store profileout.ProfileStore) *ProfileService {
	return &ProfileService{clock: clock, store: store}
}

func (s *ProfileService) Get(ctx context.Context) (domain.Profile, error) {
	return s.store.Load(ctx)
}

func (s *ProfileService) Onboard(ctx context.Context, name, motto string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	now := s.clock.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.Onboarded = true
	profile.Name = name
	profile.Motto = strings.TrimSpace(motto)
	profile.UpdatedAt = now
	if err := s.store.Save(ctx, profile); err != nil {
		return profile, err
	}
	return profile, nil
}

func (s *ProfileService) Award(ctx context.Context, amount int) (domain.Profile, error) {
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if amount <= 0 {
		return profile, nil
	}
	profile = profile.Award(amount)
	profile.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, profile); err != nil {
		return profile, err
	}
	return profile, nil
}
