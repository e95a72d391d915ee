package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"questlog/internal/modules/history/domain"
	"questlog/internal/modules/history/dto"
	historyin "questlog/internal/modules/history/port/in"
	historyout "questlog/internal/modules/history/port/out"
	"questlog/internal/modules/history/service"
	taskdomain "questlog/internal/modules/task/domain"
	apperrors "questlog/internal/platform/errors"
)

type Interactor struct {
	svc     *service.HistoryService
	journal historyout.Journal
}

func NewInteractor(svc *service.HistoryService, journal historyout.Journal) historyin.Usecase {
	return &Interactor{svc: svc, journal: journal}
}

func (i *Interactor) Append(ctx context.Context, log domain.DayLog) error {
	return i.svc.Append(ctx, log)
}

func (i *Interactor) Entries(ctx context.Context) ([]domain.DayLog, error) {
	return i.svc.Entries(ctx)
}

// ListDays returns archived days newest first.
func (i *Interactor) ListDays(ctx context.Context, input dto.ListInput) ([]dto.DayOutput, error) {
	logs, err := i.svc.Entries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayOutput, 0, len(logs))
	for idx := len(logs) - 1; idx >= 0; idx-- {
		if input.Limit > 0 && len(out) >= input.Limit {
			break
		}
		out = append(out, toDayOutput(logs[idx]))
	}
	return out, nil
}

func (i *Interactor) GetDay(ctx context.Context, date string) (dto.DayDetailOutput, error) {
	log, err := i.svc.Get(ctx, strings.TrimSpace(date))
	if err != nil {
		return dto.DayDetailOutput{}, err
	}
	lines := make([]dto.TaskLine, 0, len(log.Tasks))
	for _, task := range log.Tasks {
		lines = append(lines, toTaskLine(task))
	}
	return dto.DayDetailOutput{Day: toDayOutput(log), Tasks: lines}, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	if strings.TrimSpace(input.Dir) == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: export dir is required", apperrors.ErrInvalidInput)
	}
	if i.journal == nil {
		return dto.ExportOutput{}, fmt.Errorf("journal export is not configured")
	}
	logs, err := i.svc.Entries(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	out := dto.ExportOutput{Dir: input.Dir, Paths: make([]string, 0, len(logs))}
	for _, log := range logs {
		path, err := i.journal.WriteDay(ctx, input.Dir, log)
		if err != nil {
			return out, fmt.Errorf("export %s: %w", log.Date, err)
		}
		out.Paths = append(out.Paths, path)
	}
	return out, nil
}

func toDayOutput(log domain.DayLog) dto.DayOutput {
	return dto.DayOutput{
		Date:           log.Date,
		CompletionRate: log.Stats.CompletionRate,
		TotalFocusMin:  taskdomain.MinutesOf(log.Stats.TotalFocusTimeMS),
		TaskCount:      len(log.Tasks),
		CompletedTasks: log.CompletedTasks(),
	}
}

func toTaskLine(task taskdomain.Task) dto.TaskLine {
	return dto.TaskLine{
		Title:    task.Title,
		Category: task.Category,
		Type:     string(task.Type),
		Current:  task.Current,
		Target:   task.Target,
		Unit:     task.Unit,
		Percent:  int(math.Round(task.Ratio() * 100)),
		Sessions: len(task.Sessions),
	}
}
