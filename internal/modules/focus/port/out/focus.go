package out

import (
	"context"

	"questlog/internal/modules/focus/domain"
)

type ActiveFocusStore interface {
	SaveActive(ctx context.Context, focus domain.ActiveFocus) error
	LoadActive(ctx context.Context) (domain.ActiveFocus, error)
	ClearActive(ctx context.Context) error
}
