package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	focusin "questlog/internal/modules/focus/port/in"
	historydomain "questlog/internal/modules/history/domain"
	historyin "questlog/internal/modules/history/port/in"
	profiledto "questlog/internal/modules/profile/dto"
	profilein "questlog/internal/modules/profile/port/in"
	progressin "questlog/internal/modules/progress/port/in"
	"questlog/internal/modules/rollover/domain"
	"questlog/internal/modules/rollover/dto"
	rolloverin "questlog/internal/modules/rollover/port/in"
	"questlog/internal/modules/rollover/service"
	taskdomain "questlog/internal/modules/task/domain"
	taskin "questlog/internal/modules/task/port/in"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/logging"
	"questlog/internal/platform/tx"
)

type Interactor struct {
	svc      *service.RolloverService
	tasks    taskin.Usecase
	history  historyin.Usecase
	profile  profilein.Usecase
	progress progressin.Usecase
	focus    focusin.Usecase
	tx       tx.Manager
	logger   hclog.Logger
}

func NewInteractor(
	svc *service.RolloverService,
	tasks taskin.Usecase,
	history historyin.Usecase,
	profile profilein.Usecase,
	progress progressin.Usecase,
	focus focusin.Usecase,
	txManager tx.Manager,
	logger hclog.Logger,
) rolloverin.Usecase {
	if txManager == nil {
		txManager = tx.NoopManager{}
	}
	return &Interactor{
		svc:      svc,
		tasks:    tasks,
		history:  history,
		profile:  profile,
		progress: progress,
		focus:    focus,
		tx:       txManager,
		logger:   logging.OrNull(logger).Named("rollover"),
	}
}

// CheckAutomaticRollover closes a stale day on startup. Running it again on
// the same day changes nothing.
func (i *Interactor) CheckAutomaticRollover(ctx context.Context) (dto.CheckOutput, error) {
	out := dto.CheckOutput{}
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		obs, err := i.svc.Observe(ctx)
		if err != nil {
			return err
		}
		out.State = string(obs.State)
		out.Today = obs.Today
		out.LastActive = obs.LastActive

		switch obs.State {
		case domain.StateSameDay:
			return nil
		case domain.StateFirstRun:
			i.logger.Debug("first run, recording today", "today", obs.Today)
			return i.svc.MarkActive(ctx, obs.Today)
		}

		if obs.LastActive > obs.Today {
			i.logger.Warn("last active date is ahead of today", "last_active", obs.LastActive, "today", obs.Today)
		}
		tasks, err := i.tasks.Snapshot(ctx)
		if err != nil {
			return err
		}
		if taskdomain.HasProgress(tasks) {
			if _, err := i.archive(ctx, obs.LastActive, tasks); err != nil {
				return err
			}
			out.Archived = true
			out.ArchivedDate = obs.LastActive
			out.Notice = fmt.Sprintf("A new day has started. Progress from %s was saved to history.", obs.LastActive)
		}
		if _, err := i.tasks.ResetAll(ctx); err != nil {
			return err
		}
		out.Reset = true
		if err := i.flagRunningFocus(ctx, obs.Today, &out); err != nil {
			return err
		}
		if err := i.svc.MarkActive(ctx, obs.Today); err != nil {
			return err
		}
		i.logger.Info("day rolled over", "from", obs.LastActive, "to", obs.Today, "archived", out.Archived)
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("automatic rollover: %w", err)
	}
	return out, nil
}

// EndDay archives today unconditionally, resets every task and grants the
// day-end bonus.
func (i *Interactor) EndDay(ctx context.Context) (dto.EndDayOutput, error) {
	out := dto.EndDayOutput{}
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		today := i.svc.Today()
		out.Date = today
		tasks, err := i.tasks.Snapshot(ctx)
		if err != nil {
			return err
		}
		log, err := i.archive(ctx, today, tasks)
		if err != nil {
			return err
		}
		out.CompletionRate = log.Stats.CompletionRate
		if _, err := i.tasks.ResetAll(ctx); err != nil {
			return err
		}

		out.XPBonus = domain.DayEndBonus(log.Stats.CompletionRate)
		if _, err := i.profile.AwardXP(ctx, profiledto.AwardXPInput{Amount: out.XPBonus, Reason: "day end bonus"}); err != nil {
			return err
		}
		if err := i.svc.MarkActive(ctx, today); err != nil {
			return err
		}

		history, err := i.history.Entries(ctx)
		if err != nil {
			return err
		}
		profile, err := i.profile.Snapshot(ctx)
		if err != nil {
			return err
		}
		metrics := i.progress.Evaluate(nil, history, &profile)
		out.Streak = metrics.Streak
		out.Reward = metrics.Streak > 0
		out.Level = metrics.Level
		out.LevelProgress = metrics.LevelProgress
		out.Summary = fmt.Sprintf("Day %s closed at %d%%.", today, log.Stats.CompletionRate)
		i.logger.Info("day ended", "date", today, "completion_rate", out.CompletionRate, "bonus", out.XPBonus, "streak", out.Streak)
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("end day: %w", err)
	}
	return out, nil
}

// flagRunningFocus reports a focus interval started before today. It is left
// running; stopping it credits the whole interval to the stop day.
func (i *Interactor) flagRunningFocus(ctx context.Context, today string, out *dto.CheckOutput) error {
	if i.focus == nil {
		return nil
	}
	active, err := i.focus.GetActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveFocus) {
		return nil
	}
	if err != nil {
		return err
	}
	since := i.svc.DayOf(active.StartedAt)
	if since >= today {
		return nil
	}
	out.RunningFocus = active.TaskTitle
	out.RunningFocusSince = since
	note := fmt.Sprintf("A focus session on %q started %s is still running. Stopping it counts the whole interval toward today.", active.TaskTitle, since)
	out.Notice = strings.TrimSpace(out.Notice + " " + note)
	i.logger.Warn("focus interval spans the day boundary", "task", active.TaskID, "since", since, "today", today)
	return nil
}

func (i *Interactor) archive(ctx context.Context, date string, tasks []taskdomain.Task) (historydomain.DayLog, error) {
	history, err := i.history.Entries(ctx)
	if err != nil {
		return historydomain.DayLog{}, err
	}
	profile, err := i.profile.Snapshot(ctx)
	if err != nil {
		return historydomain.DayLog{}, err
	}
	metrics := i.progress.Evaluate(tasks, history, &profile)
	log := historydomain.NewDayLog(date, tasks, metrics.CompletionRate)
	if err := i.history.Append(ctx, log); err != nil {
		return log, err
	}
	return log, nil
}
