package in

import (
	"context"

	"questlog/internal/modules/task/dto"
	taskin "questlog/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, category, taskType string, target int, unit string, tags []string) (dto.MutationOutput, error) {
	return h.usecase.AddTask(ctx, dto.AddTaskInput{
		Title:    title,
		Category: category,
		Type:     taskType,
		Target:   target,
		Unit:     unit,
		Tags:     tags,
	})
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateTaskInput) (dto.MutationOutput, error) {
	return h.usecase.UpdateTask(ctx, input)
}

func (h CLIHandler) SetProgress(ctx context.Context, id string, current int) (dto.MutationOutput, error) {
	return h.usecase.SetProgress(ctx, dto.SetProgressInput{ID: id, Current: current})
}

func (h CLIHandler) IncrementProgress(ctx context.Context, id string, delta int) (dto.MutationOutput, error) {
	return h.usecase.IncrementProgress(ctx, dto.IncrementProgressInput{ID: id, Delta: delta})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.DeleteTask(ctx, dto.DeleteTaskInput{ID: id})
}

func (h CLIHandler) LogFocus(ctx context.Context, id string, durationMS int64) (dto.FocusOutput, error) {
	return h.usecase.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: id, DurationMS: durationMS})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.ListTasks(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.GetTask(ctx, id)
}
