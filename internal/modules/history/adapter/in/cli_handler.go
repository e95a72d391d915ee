package in

import (
	"context"

	"questlog/internal/modules/history/dto"
	historyin "questlog/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]dto.DayOutput, error) {
	return h.usecase.ListDays(ctx, dto.ListInput{Limit: limit})
}

func (h CLIHandler) Show(ctx context.Context, date string) (dto.DayDetailOutput, error) {
	return h.usecase.GetDay(ctx, date)
}

func (h CLIHandler) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Dir: dir})
}
