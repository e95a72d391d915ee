package in

import (
	"context"

	"questlog/internal/modules/task/domain"
	"questlog/internal/modules/task/dto"
)

type Usecase interface {
	AddTask(ctx context.Context, input dto.AddTaskInput) (dto.MutationOutput, error)
	UpdateTask(ctx context.Context, input dto.UpdateTaskInput) (dto.MutationOutput, error)
	SetProgress(ctx context.Context, input dto.SetProgressInput) (dto.MutationOutput, error)
	IncrementProgress(ctx context.Context, input dto.IncrementProgressInput) (dto.MutationOutput, error)
	DeleteTask(ctx context.Context, input dto.DeleteTaskInput) error
	RecordFocusSession(ctx context.Context, input dto.RecordFocusInput) (dto.FocusOutput, error)
	ListTasks(ctx context.Context) ([]dto.TaskOutput, error)
	GetTask(ctx context.Context, id string) (dto.TaskOutput, error)

	// Snapshot returns deep copies of every task.
	Snapshot(ctx context.Context) ([]domain.Task, error)
	// ResetAll zeroes progress and sessions on every task.
	ResetAll(ctx context.Context) ([]domain.Task, error)
}
