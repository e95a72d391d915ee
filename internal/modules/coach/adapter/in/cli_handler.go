package in

import (
	"context"

	"questlog/internal/modules/coach/dto"
	coachin "questlog/internal/modules/coach/port/in"
)

type CLIHandler struct {
	usecase coachin.Usecase
}

func NewCLIHandler(usecase coachin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Narrate(ctx context.Context) (dto.NarrationOutput, error) {
	return h.usecase.Narrate(ctx)
}
