package out

import (
	"context"

	"questlog/internal/modules/task/domain"
)

type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}
