package out

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/task/domain"
	taskout "questlog/internal/modules/task/port/out"
	"questlog/internal/platform/kv"
	"questlog/internal/platform/logging"
)

type KVTaskStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVTaskStore(store kv.Store, logger hclog.Logger) taskout.TaskStore {
	return &KVTaskStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if _, err := kv.LoadJSON(ctx, s.store, kv.KeyTasks, &tasks); err != nil {
		if errors.Is(err, kv.ErrMalformed) {
			s.logger.Warn("task list is malformed, starting empty", "error", err)
			return []domain.Task{}, nil
		}
		return nil, err
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == "" {
			s.logger.Warn("dropping stored task without id", "title", task.Title)
			continue
		}
		if task.Sessions == nil {
			task.Sessions = []domain.Session{}
		}
		if task.Current < 0 {
			task.Current = 0
		}
		out = append(out, task)
	}
	return out, nil
}

func (s *KVTaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return kv.SaveJSON(ctx, s.store, kv.KeyTasks, tasks)
}
