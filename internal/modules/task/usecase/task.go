package usecase

import (
	"context"
	"fmt"
	"math"

	profiledto "questlog/internal/modules/profile/dto"
	profilein "questlog/internal/modules/profile/port/in"
	"questlog/internal/modules/task/domain"
	"questlog/internal/modules/task/dto"
	taskin "questlog/internal/modules/task/port/in"
	"questlog/internal/modules/task/service"
	apperrors "questlog/internal/platform/errors"
)

type Interactor struct {
	svc     *service.TaskService
	profile profilein.Usecase
}

func NewInteractor(svc *service.TaskService, profile profilein.Usecase) taskin.Usecase {
	return &Interactor{svc: svc, profile: profile}
}

func (i *Interactor) AddTask(ctx context.Context, input dto.AddTaskInput) (dto.MutationOutput, error) {
	task, err := i.svc.Add(ctx, input.Title, input.Category, domain.TaskType(input.Type), input.Target, input.Unit, input.Tags)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	if err := i.award(ctx, domain.XPTaskCreated, "task created"); err != nil {
		return dto.MutationOutput{Task: toOutput(task)}, err
	}
	return dto.MutationOutput{Task: toOutput(task), XPAwarded: domain.XPTaskCreated}, nil
}

func (i *Interactor) UpdateTask(ctx context.Context, input dto.UpdateTaskInput) (dto.MutationOutput, error) {
	if input.Current != nil && *input.Current < 0 {
		return dto.MutationOutput{}, fmt.Errorf("%w: current must be non-negative", apperrors.ErrInvalidInput)
	}
	old, updated, err := i.svc.Update(ctx, input.ID, func(task domain.Task) (domain.Task, error) {
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Category != nil {
			task.Category = *input.Category
		}
		if input.Target != nil {
			task.Target = *input.Target
		}
		if input.Unit != nil {
			task.Unit = *input.Unit
		}
		if input.Current != nil {
			task.Current = *input.Current
		}
		if input.Tags != nil {
			task.Tags = append([]string(nil), input.Tags...)
		}
		return task, nil
	})
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.afterUpdate(ctx, old, updated)
}

func (i *Interactor) SetProgress(ctx context.Context, input dto.SetProgressInput) (dto.MutationOutput, error) {
	current := input.Current
	if current < 0 {
		current = 0
	}
	return i.UpdateTask(ctx, dto.UpdateTaskInput{ID: input.ID, Current: &current})
}

func (i *Interactor) IncrementProgress(ctx context.Context, input dto.IncrementProgressInput) (dto.MutationOutput, error) {
	old, updated, err := i.svc.Update(ctx, input.ID, func(task domain.Task) (domain.Task, error) {
		task.Current += input.Delta
		if task.Current < 0 {
			task.Current = 0
		}
		return task, nil
	})
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.afterUpdate(ctx, old, updated)
}

func (i *Interactor) DeleteTask(ctx context.Context, input dto.DeleteTaskInput) error {
	return i.svc.Delete(ctx, input.ID)
}

func (i *Interactor) RecordFocusSession(ctx context.Context, input dto.RecordFocusInput) (dto.FocusOutput, error) {
	old, updated, minutes, err := i.svc.RecordFocus(ctx, input.TaskID, input.StartedAt, input.EndedAt, input.DurationMS)
	if err != nil {
		return dto.FocusOutput{}, err
	}
	out := dto.FocusOutput{Task: toOutput(updated), Minutes: minutes}
	if minutes > 0 && updated.Type == domain.TaskTypeDuration {
		xp := minutes * domain.XPPerFocusMinute
		if err := i.award(ctx, xp, "focus minutes"); err != nil {
			return out, err
		}
		out.XPAwarded += xp
	}
	if domain.CrossedTarget(old, updated) {
		if err := i.award(ctx, domain.XPTargetReached, "target reached"); err != nil {
			return out, err
		}
		out.XPAwarded += domain.XPTargetReached
		out.ReachedTarget = true
	}
	return out, nil
}

func (i *Interactor) ListTasks(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toOutput(task))
	}
	return out, nil
}

func (i *Interactor) GetTask(ctx context.Context, id string) (dto.TaskOutput, error) {
	task, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Snapshot(ctx context.Context) ([]domain.Task, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) ResetAll(ctx context.Context) ([]domain.Task, error) {
	return i.svc.ResetAll(ctx)
}

func (i *Interactor) afterUpdate(ctx context.Context, old, updated domain.Task) (dto.MutationOutput, error) {
	out := dto.MutationOutput{Task: toOutput(updated)}
	if !domain.CrossedTarget(old, updated) {
		return out, nil
	}
	out.ReachedTarget = true
	if err := i.award(ctx, domain.XPTargetReached, "target reached"); err != nil {
		return out, err
	}
	out.XPAwarded = domain.XPTargetReached
	return out, nil
}

func (i *Interactor) award(ctx context.Context, amount int, reason string) error {
	if i.profile == nil || amount <= 0 {
		return nil
	}
	_, err := i.profile.AwardXP(ctx, profiledto.AwardXPInput{Amount: amount, Reason: reason})
	return err
}

func toOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:           task.ID,
		Title:        task.Title,
		Category:     task.Category,
		Type:         string(task.Type),
		Target:       task.Target,
		Unit:         task.Unit,
		Current:      task.Current,
		Percent:      int(math.Round(task.Ratio() * 100)),
		Complete:     task.IsComplete(),
		SessionCount: len(task.Sessions),
		FocusMinutes: domain.MinutesOf(task.FocusTimeMS()),
		Tags:         append([]string(nil), task.Tags...),
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}
