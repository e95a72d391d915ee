package bootstrap

import (
	"context"
	"fmt"
	"io"

	hclog "github.com/hashicorp/go-hclog"

	coachinadapter "questlog/internal/modules/coach/adapter/in"
	coachoutadapter "questlog/internal/modules/coach/adapter/out"
	coachout "questlog/internal/modules/coach/port/out"
	coachservice "questlog/internal/modules/coach/service"
	coachusecase "questlog/internal/modules/coach/usecase"
	focusinadapter "questlog/internal/modules/focus/adapter/in"
	focusoutadapter "questlog/internal/modules/focus/adapter/out"
	focusservice "questlog/internal/modules/focus/service"
	focususecase "questlog/internal/modules/focus/usecase"
	historyinadapter "questlog/internal/modules/history/adapter/in"
	historyoutadapter "questlog/internal/modules/history/adapter/out"
	historyservice "questlog/internal/modules/history/service"
	historyusecase "questlog/internal/modules/history/usecase"
	profileinadapter "questlog/internal/modules/profile/adapter/in"
	profileoutadapter "questlog/internal/modules/profile/adapter/out"
	profileservice "questlog/internal/modules/profile/service"
	profileusecase "questlog/internal/modules/profile/usecase"
	progressinadapter "questlog/internal/modules/progress/adapter/in"
	progressusecase "questlog/internal/modules/progress/usecase"
	rolloverinadapter "questlog/internal/modules/rollover/adapter/in"
	rolloveroutadapter "questlog/internal/modules/rollover/adapter/out"
	rolloverservice "questlog/internal/modules/rollover/service"
	rolloverusecase "questlog/internal/modules/rollover/usecase"
	settingsinadapter "questlog/internal/modules/settings/adapter/in"
	settingsoutadapter "questlog/internal/modules/settings/adapter/out"
	settingsservice "questlog/internal/modules/settings/service"
	settingsusecase "questlog/internal/modules/settings/usecase"
	taskinadapter "questlog/internal/modules/task/adapter/in"
	taskoutadapter "questlog/internal/modules/task/adapter/out"
	taskservice "questlog/internal/modules/task/service"
	taskusecase "questlog/internal/modules/task/usecase"
	"questlog/internal/platform/clock"
	"questlog/internal/platform/config"
	"questlog/internal/platform/id"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
	"questlog/internal/platform/tx"
)

type App struct {
	TaskCLI     taskinadapter.CLIHandler
	HistoryCLI  historyinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	RolloverCLI rolloverinadapter.CLIHandler
	FocusCLI    focusinadapter.CLIHandler
	CoachCLI    coachinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler

	Logger hclog.Logger
	close  func() error
}

// Store is a durable backend that can also scope several writes in one
// transaction.
type Store interface {
	kv.Store
	tx.Manager
	Close() error
}

type Options struct {
	Clock clock.Clock
	IDs   id.Generator
	// Store overrides the configured backend.
	Store     Store
	LogOutput io.Writer
}

func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	logger := logging.New(cfg.Log.Level, opts.LogOutput)
	calendar, err := clock.NewCalendar(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = id.UUIDv7{}
	}
	store := opts.Store
	if store == nil {
		store, err = openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("storage ready", "driver", cfg.Storage.Driver, "timezone", calendar.Location().String())

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(clk, profileoutadapter.NewKVProfileStore(store, logger)))
	taskUC := taskusecase.NewInteractor(taskservice.NewTaskService(clk, ids, taskoutadapter.NewKVTaskStore(store, logger)), profileUC)
	historyUC := historyusecase.NewInteractor(
		historyservice.NewHistoryService(historyoutadapter.NewKVHistoryStore(store, logger)),
		historyoutadapter.NewMarkdownJournal(),
	)
	progressUC := progressusecase.NewInteractor(taskUC, historyUC, profileUC, cfg.Evaluation.StreakThreshold)
	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsoutadapter.NewKVSettingsStore(store, logger)))
	focusUC := focususecase.NewInteractor(focusservice.NewFocusService(clk, focusoutadapter.NewKVActiveFocusStore(store, logger)), taskUC, store)
	rolloverUC := rolloverusecase.NewInteractor(
		rolloverservice.NewRolloverService(clk, calendar, rolloveroutadapter.NewKVLastActiveStore(store, logger)),
		taskUC,
		historyUC,
		profileUC,
		progressUC,
		focusUC,
		store,
		logger,
	)

	var narrator coachout.Narrator
	if cfg.Coach.Plugin.Binary != "" {
		narrator = coachoutadapter.NewGRPCNarrator(coachoutadapter.PluginConfig{
			Binary:  cfg.Coach.Plugin.Binary,
			SHA256:  cfg.Coach.Plugin.SHA256,
			Timeout: cfg.Coach.Plugin.Timeout,
		}, logger)
	}
	coachUC := coachusecase.NewInteractor(coachservice.NewCoachService(narrator, logger), taskUC, historyUC, profileUC, progressUC, settingsUC)

	return &App{
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		HistoryCLI:  historyinadapter.NewCLIHandler(historyUC),
		ProfileCLI:  profileinadapter.NewCLIHandler(profileUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		RolloverCLI: rolloverinadapter.NewCLIHandler(rolloverUC),
		FocusCLI:    focusinadapter.NewCLIHandler(focusUC),
		CoachCLI:    coachinadapter.NewCLIHandler(coachUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		Logger:      logger,
		close:       store.Close,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

func openStore(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		store, err := kv.NewPgStore(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	default:
		store, err := kv.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
}
