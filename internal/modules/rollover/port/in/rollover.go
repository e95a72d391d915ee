package in

import (
	"context"

	"questlog/internal/modules/rollover/dto"
)

type Usecase interface {
	CheckAutomaticRollover(ctx context.Context) (dto.CheckOutput, error)
	EndDay(ctx context.Context) (dto.EndDayOutput, error)
}
