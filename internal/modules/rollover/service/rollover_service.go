package service

import (
	"context"
	"time"

	"questlog/internal/modules/rollover/domain"
	rolloverout "questlog/internal/modules/rollover/port/out"
	"questlog/internal/platform/clock"
)

type Observation struct {
	State      domain.State
	Today      string
	LastActive string
}

type RolloverService struct {
	clock    clock.Clock
	calendar clock.Calendar
	store    rolloverout.LastActiveStore
}

func NewRolloverService(clk clock.Clock, calendar clock.Calendar, store rolloverout.LastActiveStore) *RolloverService {
	return &RolloverService{clock: clk, calendar: calendar, store: store}
}

func (s *RolloverService) Today() string {
	return s.calendar.DayKey(s.clock.Now())
}

func (s *RolloverService) DayOf(t time.Time) string {
	return s.calendar.DayKey(t)
}

func (s *RolloverService) Observe(ctx context.Context) (Observation, error) {
	today := s.Today()
	last, found, err := s.store.Load(ctx)
	if err != nil {
		return Observation{}, err
	}
	return Observation{State: domain.Decide(last, found, today), Today: today, LastActive: last}, nil
}

func (s *RolloverService) MarkActive(ctx context.Context, day string) error {
	return s.store.Save(ctx, day)
}
