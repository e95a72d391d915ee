package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/history/domain"
	historyout "questlog/internal/modules/history/port/out"
	taskdomain "questlog/internal/modules/task/domain"
	"questlog/internal/platform/clock"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVHistoryStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVHistoryStore(store kv.Store, logger hclog.Logger) historyout.HistoryStore {
	return &KVHistoryStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVHistoryStore) Load(ctx context.Context) ([]domain.DayLog, error) {
	logs := []domain.DayLog{}
	if _, err := kv.LoadJSON(ctx, s.store, kv.KeyHistory, &logs); err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("history is malformed, starting empty", "error", err)
			return []domain.DayLog{}, nil
		}
		return nil, err
	}
	kept := logs[:0]
	for _, log := range logs {
		if !clock.ValidDayKey(log.Date) {
			s.logger.Warn("dropping history entry with invalid date", "date", log.Date)
			continue
		}
		if log.Tasks == nil {
			log.Tasks = []taskdomain.Task{}
		}
		if log.Stats.CompletionRate < 0 || log.Stats.CompletionRate > 100 {
			s.logger.Warn("history entry has out of range completion rate", "date", log.Date, "rate", log.Stats.CompletionRate)
			log.Stats.CompletionRate = min(max(log.Stats.CompletionRate, 0), 100)
		}
		kept = append(kept, log)
	}
	return kept, nil
}

func (s *KVHistoryStore) Save(ctx context.Context, logs []domain.DayLog) error {
	if logs == nil {
		logs = []domain.DayLog{}
	}
	return kv.SaveJSON(ctx, s.store, kv.KeyHistory, logs)
}
