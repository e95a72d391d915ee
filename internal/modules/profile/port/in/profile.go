package in

import (
	"context"

	"questlog/internal/modules/profile/domain"
	"questlog/internal/modules/profile/dto"
)

type Usecase interface {
	GetProfile(ctx context.Context) (dto.ProfileOutput, error)
	Onboard(ctx context.Context, input dto.OnboardInput) (dto.ProfileOutput, error)
	AwardXP(ctx context.Context, input dto.AwardXPInput) (dto.ProfileOutput, error)
	Snapshot(ctx context.Context) (domain.Profile, error)
}
