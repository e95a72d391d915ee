package service

import (
	"context"
	"fmt"

	"questlog/internal/modules/history/domain"
	historyout "questlog/internal/modules/history/port/out"
	apperrors "questlog/internal/platform/errors"
)

type HistoryService struct {
	store historyout.HistoryStore
}

func NewHistoryService(store historyout.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Append adds log to the end of the history. Existing entries are never
// rewritten.
func (s *HistoryService) Append(ctx context.Context, log domain.DayLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	logs, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	logs = append(logs, log.Clone())
	return s.store.Save(ctx, logs)
}

func (s *HistoryService) Entries(ctx context.Context) ([]domain.DayLog, error) {
	logs, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CloneAll(logs), nil
}

// Get returns the latest entry archived under date.
func (s *HistoryService) Get(ctx context.Context, date string) (domain.DayLog, error) {
	logs, err := s.store.Load(ctx)
	if err != nil {
		return domain.DayLog{}, err
	}
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Date == date {
			return logs[i].Clone(), nil
		}
	}
	return domain.DayLog{}, fmt.Errorf("day %s: %w", date, apperrors.ErrNotFound)
}
