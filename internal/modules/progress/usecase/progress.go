package usecase

import (
	"context"

	historydomain "questlog/internal/modules/history/domain"
	historyin "questlog/internal/modules/history/port/in"
	profiledomain "questlog/internal/modules/profile/domain"
	profilein "questlog/internal/modules/profile/port/in"
	"questlog/internal/modules/progress/domain"
	"questlog/internal/modules/progress/dto"
	progressin "questlog/internal/modules/progress/port/in"
	taskdomain "questlog/internal/modules/task/domain"
	taskin "questlog/internal/modules/task/port/in"
)

type Interactor struct {
	tasks     taskin.Usecase
	history   historyin.Usecase
	profile   profilein.Usecase
	threshold int
}

func NewInteractor(tasks taskin.Usecase, history historyin.Usecase, profile profilein.Usecase, threshold int) progressin.Usecase {
	return &Interactor{tasks: tasks, history: history, profile: profile, threshold: threshold}
}

func (i *Interactor) Current(ctx context.Context) (dto.MetricsOutput, error) {
	tasks, err := i.tasks.Snapshot(ctx)
	if err != nil {
		return dto.MetricsOutput{}, err
	}
	history, err := i.history.Entries(ctx)
	if err != nil {
		return dto.MetricsOutput{}, err
	}
	profile, err := i.profile.Snapshot(ctx)
	if err != nil {
		return dto.MetricsOutput{}, err
	}
	return i.toOutput(i.Evaluate(tasks, history, &profile)), nil
}

func (i *Interactor) Evaluate(tasks []taskdomain.Task, history []historydomain.DayLog, profile *profiledomain.Profile) domain.Metrics {
	return domain.Evaluate(tasks, history, profile, i.threshold)
}

func (i *Interactor) toOutput(m domain.Metrics) dto.MetricsOutput {
	return dto.MetricsOutput{
		CompletionRate: m.CompletionRate,
		Streak:         m.Streak,
		Summary:        m.Summary,
		Level:          m.Level,
		LevelProgress:  m.LevelProgress,
		XP:             m.XP,
		FocusMinutes:   taskdomain.MinutesOf(m.TotalFocusMS),
		CompletedTasks: m.CompletedTasks,
		TotalTasks:     m.TotalTasks,
		Threshold:      i.threshold,
	}
}
