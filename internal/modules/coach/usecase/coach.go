package usecase

import (
	"context"

	"questlog/internal/modules/coach/domain"
	"questlog/internal/modules/coach/dto"
	coachin "questlog/internal/modules/coach/port/in"
	"questlog/internal/modules/coach/service"
	historyin "questlog/internal/modules/history/port/in"
	profilein "questlog/internal/modules/profile/port/in"
	progressin "questlog/internal/modules/progress/port/in"
	settingsin "questlog/internal/modules/settings/port/in"
	taskin "questlog/internal/modules/task/port/in"
)

type Interactor struct {
	svc      *service.CoachService
	tasks    taskin.Usecase
	history  historyin.Usecase
	profile  profilein.Usecase
	progress progressin.Usecase
	settings settingsin.Usecase
}

func NewInteractor(
	svc *service.CoachService,
	tasks taskin.Usecase,
	history historyin.Usecase,
	profile profilein.Usecase,
	progress progressin.Usecase,
	settings settingsin.Usecase,
) coachin.Usecase {
	return &Interactor{svc: svc, tasks: tasks, history: history, profile: profile, progress: progress, settings: settings}
}

// Narrate only reads state. Errors come from loading that state, never from
// the narrator.
func (i *Interactor) Narrate(ctx context.Context) (dto.NarrationOutput, error) {
	tasks, err := i.tasks.Snapshot(ctx)
	if err != nil {
		return dto.NarrationOutput{}, err
	}
	history, err := i.history.Entries(ctx)
	if err != nil {
		return dto.NarrationOutput{}, err
	}
	profile, err := i.profile.Snapshot(ctx)
	if err != nil {
		return dto.NarrationOutput{}, err
	}
	persona, err := i.settings.Persona(ctx)
	if err != nil {
		return dto.NarrationOutput{}, err
	}
	metrics := i.progress.Evaluate(tasks, history, &profile)
	narration := i.svc.Narrate(ctx, domain.Request{
		Persona: persona,
		Context: domain.BuildContext(domain.Snapshot{Profile: profile, Metrics: metrics, Tasks: tasks, History: history}),
		Summary: metrics.Summary,
	})
	return dto.NarrationOutput{
		Text:     narration.Text,
		Degraded: narration.Degraded,
		Source:   narration.Source,
		Persona:  persona.Name,
	}, nil
}
