package out

import (
	"context"

	"questlog/internal/modules/coach/domain"
)

type Narrator interface {
	Narrate(ctx context.Context, req domain.Request) (string, error)
}
