package in

import (
	"context"

	"questlog/internal/modules/history/domain"
	"questlog/internal/modules/history/dto"
)

type Usecase interface {
	Append(ctx context.Context, log domain.DayLog) error
	// Entries returns deep copies of every archived day, oldest first.
	Entries(ctx context.Context) ([]domain.DayLog, error)
	ListDays(ctx context.Context, input dto.ListInput) ([]dto.DayOutput, error)
	GetDay(ctx context.Context, date string) (dto.DayDetailOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
