package in

import (
	"context"

	"questlog/internal/modules/focus/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	GetActive(ctx context.Context) (dto.ActiveOutput, error)
	Cancel(ctx context.Context) error
}
