package out

import (
	"context"

	"questlog/internal/modules/history/domain"
)

type HistoryStore interface {
	Load(ctx context.Context) ([]domain.DayLog, error)
	Save(ctx context.Context, logs []domain.DayLog) error
}

// Journal writes one human-readable note per archived day.
type Journal interface {
	WriteDay(ctx context.Context, dir string, log domain.DayLog) (string, error)
}
