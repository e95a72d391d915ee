package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"questlog/internal/modules/focus/domain"
	focusout "questlog/internal/modules/focus/port/out"
	"questlog/internal/platform/clock"
	apperrors "questlog/internal/platform/errors"
)

type FocusService struct {
	clock clock.Clock
	store focusout.ActiveFocusStore
}

func NewFocusService(clock clock.Clock, store focusout.ActiveFocusStore) *FocusService {
	return &FocusService{clock: clock, store: store}
}

func (s *FocusService) Start(ctx context.Context, taskID, taskTitle string) (domain.ActiveFocus, error) {
	if strings.TrimSpace(taskID) == "" {
		return domain.ActiveFocus{}, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	if _, err := s.store.LoadActive(ctx); err == nil {
		return domain.ActiveFocus{}, apperrors.ErrActiveFocusExists
	} else if !errors.Is(err, apperrors.ErrNoActiveFocus) {
		return domain.ActiveFocus{}, err
	}
	active := domain.ActiveFocus{TaskID: taskID, TaskTitle: taskTitle, StartedAt: s.clock.Now()}
	if err := s.store.SaveActive(ctx, active); err != nil {
		return domain.ActiveFocus{}, err
	}
	return active, nil
}

func (s *FocusService) Active(ctx context.Context) (domain.ActiveFocus, error) {
	return s.store.LoadActive(ctx)
}

// Clear discards the active interval. It fails when none is running.
func (s *FocusService) Clear(ctx context.Context) (domain.ActiveFocus, error) {
	active, err := s.store.LoadActive(ctx)
	if err != nil {
		return domain.ActiveFocus{}, err
	}
	return active, s.store.ClearActive(ctx)
}

func (s *FocusService) Now() time.Time {
	return s.clock.Now()
}
