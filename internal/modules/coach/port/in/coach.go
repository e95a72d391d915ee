package in

import (
	"context"

	"questlog/internal/modules/coach/dto"
)

type Usecase interface {
	Narrate(ctx context.Context) (dto.NarrationOutput, error)
}
