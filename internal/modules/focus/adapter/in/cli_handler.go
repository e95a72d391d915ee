package in

import (
	"context"

	"questlog/internal/modules/focus/dto"
	focusin "questlog/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, taskID string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{TaskID: taskID})
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.ActiveOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Cancel(ctx context.Context) error {
	return h.usecase.Cancel(ctx)
}
