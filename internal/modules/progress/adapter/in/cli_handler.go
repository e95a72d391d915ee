package in

import (
	"context"

	"questlog/internal/modules/progress/dto"
	progressin "questlog/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.MetricsOutput, error) {
	return h.usecase.Current(ctx)
}
