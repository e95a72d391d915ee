package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"questlog/internal/modules/task/domain"
	taskout "questlog/internal/modules/task/port/out"
	"questlog/internal/platform/clock"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/id"
)

type TaskService struct {
	clock clock.Clock
	idGen id.Generator
	store taskout.TaskStore
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store taskout.TaskStore) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store}
}

func (s *TaskService) Add(ctx context.Context, title, category string, taskType domain.TaskType, target int, unit string, tags []string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	if taskType == "" {
		taskType = domain.TaskTypeCount
	}
	now := s.clock.Now()
	task := domain.Task{
		ID:        s.idGen.New(),
		Title:     title,
		Category:  strings.TrimSpace(category),
		Type:      taskType,
		Target:    target,
		Unit:      strings.TrimSpace(unit),
		Current:   0,
		Sessions:  []domain.Session{},
		Tags:      cleanTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	tasks = append(tasks, task)
	if err := s.store.Save(ctx, tasks); err != nil {
		return task.Clone(), err
	}
	return task.Clone(), nil
}

// Update applies mutate to the task with the given id and persists the
// result. It returns the task before and after the change.
func (s *TaskService) Update(ctx context.Context, taskID string, mutate func(domain.Task) (domain.Task, error)) (domain.Task, domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, domain.Task{}, err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, domain.Task{}, fmt.Errorf("task %s: %w", taskID, apperrors.ErrNotFound)
	}
	old := tasks[idx].Clone()
	updated, err := mutate(tasks[idx].Clone())
	if err != nil {
		return domain.Task{}, domain.Task{}, err
	}
	updated.ID = old.ID
	updated.Type = old.Type
	updated.CreatedAt = old.CreatedAt
	updated.UpdatedAt = s.clock.Now()
	if err := updated.Validate(); err != nil {
		return domain.Task{}, domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	tasks[idx] = updated
	if err := s.store.Save(ctx, tasks); err != nil {
		return old, updated.Clone(), err
	}
	return old, updated.Clone(), nil
}

func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return fmt.Errorf("task %s: %w", taskID, apperrors.ErrNotFound)
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	return s.store.Save(ctx, tasks)
}

// RecordFocus appends a session and, for duration tasks, credits the
// rounded minutes to current progress.
func (s *TaskService) RecordFocus(ctx context.Context, taskID string, startedAt, endedAt time.Time, durationMS int64) (domain.Task, domain.Task, int, error) {
	if durationMS < 0 {
		return domain.Task{}, domain.Task{}, 0, fmt.Errorf("%w: duration must be non-negative", apperrors.ErrInvalidInput)
	}
	if endedAt.IsZero() {
		endedAt = s.clock.Now()
	}
	if startedAt.IsZero() {
		startedAt = endedAt.Add(-time.Duration(durationMS) * time.Millisecond)
	}
	minutes := 0
	old, updated, err := s.Update(ctx, taskID, func(task domain.Task) (domain.Task, error) {
		task.Sessions = append(task.Sessions, domain.Session{StartedAt: startedAt, EndedAt: endedAt, DurationMS: durationMS})
		if task.Type == domain.TaskTypeDuration {
			minutes = domain.MinutesOf(durationMS)
			task.Current += minutes
		}
		return task, nil
	})
	return old, updated, minutes, err
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CloneAll(tasks), nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, fmt.Errorf("task %s: %w", taskID, apperrors.ErrNotFound)
	}
	return tasks[idx].Clone(), nil
}

func (s *TaskService) ResetAll(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	for i := range tasks {
		tasks[i] = tasks[i].Reset(now)
	}
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.CloneAll(tasks), err
	}
	return domain.CloneAll(tasks), nil
}

func indexOf(tasks []domain.Task, taskID string) int {
	for i, task := range tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
