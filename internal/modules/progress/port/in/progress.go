package in

import (
	"context"

	historydomain "questlog/internal/modules/history/domain"
	profiledomain "questlog/internal/modules/profile/domain"
	"questlog/internal/modules/progress/domain"
	"questlog/internal/modules/progress/dto"
	taskdomain "questlog/internal/modules/task/domain"
)

type Usecase interface {
	// Current evaluates the live task list against stored history.
	Current(ctx context.Context) (dto.MetricsOutput, error)
	// Evaluate runs the evaluator over caller supplied state.
	Evaluate(tasks []taskdomain.Task, history []historydomain.DayLog, profile *profiledomain.Profile) domain.Metrics
}
