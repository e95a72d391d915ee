package usecase

import (
	"context"

	"questlog/internal/modules/profile/domain"
	"questlog/internal/modules/profile/dto"
	profilein "questlog/internal/modules/profile/port/in"
	"questlog/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetProfile(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Get(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Onboard(ctx context.Context, input dto.OnboardInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Onboard(ctx, input.Name, input.Motto)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) AwardXP(ctx context.Context, input dto.AwardXPInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Award(ctx, input.Amount)
	if err != nil {
		return toOutput(profile), err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Snapshot(ctx context.Context) (domain.Profile, error) {
	return i.svc.Get(ctx)
}

func toOutput(profile domain.Profile) dto.ProfileOutput {
	level := domain.LevelOf(profile.XP)
	return dto.ProfileOutput{
		Onboarded:     profile.Onboarded,
		Name:          profile.Name,
		Motto:         profile.Motto,
		XP:            profile.XP,
		Level:         level.Level,
		LevelProgress: level.Progress,
		XPIntoLevel:   level.XPIntoLevel,
		XPForLevel:    level.XPForLevel,
	}
}
