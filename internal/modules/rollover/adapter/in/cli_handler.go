package in

import (
	"context"

	"questlog/internal/modules/rollover/dto"
	rolloverin "questlog/internal/modules/rollover/port/in"
)

type CLIHandler struct {
	usecase rolloverin.Usecase
}

func NewCLIHandler(usecase rolloverin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context) (dto.CheckOutput, error) {
	return h.usecase.CheckAutomaticRollover(ctx)
}

func (h CLIHandler) EndDay(ctx context.Context) (dto.EndDayOutput, error) {
	return h.usecase.EndDay(ctx)
}
