package usecase

import (
	"context"

	"questlog/internal/modules/focus/dto"
	focusin "questlog/internal/modules/focus/port/in"
	"questlog/internal/modules/focus/service"
	taskdto "questlog/internal/modules/task/dto"
	taskin "questlog/internal/modules/task/port/in"
	"questlog/internal/platform/tx"
)

type Interactor struct {
	svc   *service.FocusService
	tasks taskin.Usecase
	tx    tx.Manager
}

func NewInteractor(svc *service.FocusService, tasks taskin.Usecase, txManager tx.Manager) focusin.Usecase {
	if txManager == nil {
		txManager = tx.NoopManager{}
	}
	return &Interactor{svc: svc, tasks: tasks, tx: txManager}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	task, err := i.tasks.GetTask(ctx, input.TaskID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	active, err := i.svc.Start(ctx, task.ID, task.Title)
	if err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{TaskID: active.TaskID, TaskTitle: active.TaskTitle, StartedAt: active.StartedAt}, nil
}

// Stop records the elapsed interval on its task and clears it in one
// transaction. The interval stays active if either step fails so it can be
// retried without recording twice.
func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	out := dto.StopOutput{}
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		active, err := i.svc.Active(ctx)
		if err != nil {
			return err
		}
		endedAt := i.svc.Now()
		elapsed := active.ElapsedMS(endedAt)
		recorded, err := i.tasks.RecordFocusSession(ctx, taskdto.RecordFocusInput{
			TaskID:     active.TaskID,
			StartedAt:  active.StartedAt,
			EndedAt:    endedAt,
			DurationMS: elapsed,
		})
		if err != nil {
			return err
		}
		if _, err := i.svc.Clear(ctx); err != nil {
			return err
		}
		out = dto.StopOutput{
			TaskID:        active.TaskID,
			TaskTitle:     active.TaskTitle,
			StartedAt:     active.StartedAt,
			EndedAt:       endedAt,
			DurationMS:    elapsed,
			Minutes:       recorded.Minutes,
			Current:       recorded.Task.Current,
			Target:        recorded.Task.Target,
			XPAwarded:     recorded.XPAwarded,
			ReachedTarget: recorded.ReachedTarget,
		}
		return nil
	})
	if err != nil {
		return dto.StopOutput{}, err
	}
	return out, nil
}

func (i *Interactor) GetActive(ctx context.Context) (dto.ActiveOutput, error) {
	active, err := i.svc.Active(ctx)
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	return dto.ActiveOutput{
		TaskID:    active.TaskID,
		TaskTitle: active.TaskTitle,
		StartedAt: active.StartedAt,
		ElapsedMS: active.ElapsedMS(i.svc.Now()),
	}, nil
}

func (i *Interactor) Cancel(ctx context.Context) error {
	_, err := i.svc.Clear(ctx)
	return err
}
