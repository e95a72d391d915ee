package in

import (
	"context"

	"questlog/internal/modules/profile/dto"
	profilein "questlog/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.GetProfile(ctx)
}

func (h CLIHandler) Onboard(ctx context.Context, name, motto string) (dto.ProfileOutput, error) {
	return h.usecase.Onboard(ctx, dto.OnboardInput{Name: name, Motto: motto})
}
