package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	profileout "questlog/internal/modules/profile/adapter/out"
	profilein "questlog/internal/modules/profile/port/in"
	profileservice "questlog/internal/modules/profile/service"
	profileusecase "questlog/internal/modules/profile/usecase"
	taskout "questlog/internal/modules/task/adapter/out"
	"questlog/internal/modules/task/dto"
	taskin "questlog/internal/modules/task/port/in"
	"questlog/internal/modules/task/service"
	"questlog/internal/modules/task/usecase"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/kv"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct {
	n int
}

func (f *fakeID) New() string {
	f.n++
	return fmt.Sprintf("task-%d", f.n)
}

type fixture struct {
	tasks   taskin.Usecase
	profile profilein.Usecase
	store   *kv.MemoryStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}}
	profile := profileusecase.NewInteractor(profileservice.NewProfileService(clk, profileout.NewKVProfileStore(store, nil)))
	svc := service.NewTaskService(clk, &fakeID{}, taskout.NewKVTaskStore(store, nil))
	return fixture{tasks: usecase.NewInteractor(svc, profile), profile: profile, store: store}
}

func (f fixture) xp(t *testing.T) int {
	t.Helper()
	out, err := f.profile.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return out.XP
}

func TestAddTaskAwardsCreationXPAndStartsEmpty(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	out, err := f.tasks.AddTask(context.Background(), dto.AddTaskInput{Title: " Read ", Type: "count", Target: 10, Unit: "pages", Tags: []string{"books", "books", " "}})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if out.Task.ID == "" || out.Task.Title != "Read" || out.Task.Current != 0 || out.Task.SessionCount != 0 {
		t.Fatalf("unexpected task: %+v", out.Task)
	}
	if len(out.Task.Tags) != 1 || out.Task.Tags[0] != "books" {
		t.Fatalf("expected deduplicated tags, got %v", out.Task.Tags)
	}
	if out.XPAwarded != 10 || f.xp(t) != 10 {
		t.Fatalf("expected 10 xp, got award=%d profile=%d", out.XPAwarded, f.xp(t))
	}
}

func TestAddTaskRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	cases := []dto.AddTaskInput{
		{Title: "   ", Target: 5},
		{Title: "Run", Target: 0},
		{Title: "Run", Type: "weekly", Target: 5},
	}
	for _, input := range cases {
		f := newFixture(t)
		if _, err := f.tasks.AddTask(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", input, err)
		}
		if f.xp(t) != 0 {
			t.Fatalf("rejected task must not award xp")
		}
		list, _ := f.tasks.ListTasks(context.Background())
		if len(list) != 0 {
			t.Fatalf("rejected task must not be stored")
		}
	}
}

func TestTargetCrossingAwardsOnlyOnUpwardTransition(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, err := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Pushups", Target: 20})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	id := added.Task.ID

	out, err := f.tasks.SetProgress(ctx, dto.SetProgressInput{ID: id, Current: 12})
	if err != nil || out.XPAwarded != 0 || out.ReachedTarget {
		t.Fatalf("partial progress must not award: %+v %v", out, err)
	}
	out, err = f.tasks.IncrementProgress(ctx, dto.IncrementProgressInput{ID: id, Delta: 8})
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if !out.ReachedTarget || out.XPAwarded != 50 || out.Task.Percent != 100 {
		t.Fatalf("expected crossing award, got %+v", out)
	}
	out, err = f.tasks.IncrementProgress(ctx, dto.IncrementProgressInput{ID: id, Delta: 5})
	if err != nil || out.XPAwarded != 0 {
		t.Fatalf("already complete task must not award again: %+v %v", out, err)
	}
	if out.Task.Current != 25 || out.Task.Percent != 100 {
		t.Fatalf("expected overshoot stored with clamped percent, got %+v", out.Task)
	}
	if got := f.xp(t); got != 60 {
		t.Fatalf("expected 60 xp, got %d", got)
	}
}

func TestIncrementAndSetProgressClampToZero(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Water", Target: 8})
	out, err := f.tasks.IncrementProgress(ctx, dto.IncrementProgressInput{ID: added.Task.ID, Delta: -3})
	if err != nil || out.Task.Current != 0 {
		t.Fatalf("expected clamp to zero, got %+v %v", out.Task, err)
	}
	out, err = f.tasks.SetProgress(ctx, dto.SetProgressInput{ID: added.Task.ID, Current: -1})
	if err != nil || out.Task.Current != 0 {
		t.Fatalf("expected clamp to zero, got %+v %v", out.Task, err)
	}
}

func TestUpdateTaskKeepsUnsetFieldsAndTargetEditsEarnNothing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Write", Category: "craft", Target: 1000, Unit: "words"})
	_, _ = f.tasks.SetProgress(ctx, dto.SetProgressInput{ID: added.Task.ID, Current: 600})

	title := "Write essay"
	target := 500
	out, err := f.tasks.UpdateTask(ctx, dto.UpdateTaskInput{ID: added.Task.ID, Title: &title, Target: &target})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Task.Title != "Write essay" || out.Task.Category != "craft" || out.Task.Unit != "words" || out.Task.Current != 600 {
		t.Fatalf("unexpected update result: %+v", out.Task)
	}
	if out.ReachedTarget || out.XPAwarded != 0 {
		t.Fatalf("lowering the target must not award xp: %+v", out)
	}
	xpBefore := f.xp(t)
	for _, target := range []int{1000, 400, 1000, 300} {
		if _, err := f.tasks.UpdateTask(ctx, dto.UpdateTaskInput{ID: added.Task.ID, Target: &target}); err != nil {
			t.Fatalf("update target %d: %v", target, err)
		}
	}
	if got := f.xp(t); got != xpBefore {
		t.Fatalf("toggling the target farmed xp: %d -> %d", xpBefore, got)
	}
	target = 1000
	_, _ = f.tasks.UpdateTask(ctx, dto.UpdateTaskInput{ID: added.Task.ID, Target: &target})
	done, err := f.tasks.SetProgress(ctx, dto.SetProgressInput{ID: added.Task.ID, Current: 1000})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !done.ReachedTarget || done.XPAwarded != 50 {
		t.Fatalf("reaching the target through progress should award: %+v", done)
	}

	zero := 0
	if _, err := f.tasks.UpdateTask(ctx, dto.UpdateTaskInput{ID: added.Task.ID, Target: &zero}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid target error, got %v", err)
	}
	if _, err := f.tasks.UpdateTask(ctx, dto.UpdateTaskInput{ID: "missing", Title: &title}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecordFocusOnDurationTaskCreditsMinutesAndXP(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Deep work", Type: "duration", Target: 60, Unit: "min"})
	_, _ = f.tasks.SetProgress(ctx, dto.SetProgressInput{ID: added.Task.ID, Current: 10})
	before := f.xp(t)

	out, err := f.tasks.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: added.Task.ID, DurationMS: 1_800_000})
	if err != nil {
		t.Fatalf("record focus: %v", err)
	}
	if out.Minutes != 30 || out.Task.Current != 40 || out.Task.SessionCount != 1 {
		t.Fatalf("unexpected focus result: %+v", out)
	}
	if out.XPAwarded != 60 || f.xp(t)-before != 60 {
		t.Fatalf("expected 60 xp, got %d", out.XPAwarded)
	}
	if out.ReachedTarget {
		t.Fatalf("40 of 60 must not reach the target")
	}

	out, err = f.tasks.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: added.Task.ID, DurationMS: 20 * 60_000})
	if err != nil {
		t.Fatalf("record focus: %v", err)
	}
	if !out.ReachedTarget || out.XPAwarded != 40+50 {
		t.Fatalf("expected minutes plus crossing award, got %+v", out)
	}
}

func TestRecordFocusOnCountTaskOnlyAppendsSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Chapters", Target: 3})
	out, err := f.tasks.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: added.Task.ID, DurationMS: 25 * 60_000})
	if err != nil {
		t.Fatalf("record focus: %v", err)
	}
	if out.Task.Current != 0 || out.XPAwarded != 0 || out.Task.SessionCount != 1 || out.Task.FocusMinutes != 25 {
		t.Fatalf("unexpected count-task focus result: %+v", out)
	}
	if _, err := f.tasks.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: added.Task.ID, DurationMS: -1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative duration, got %v", err)
	}
}

func TestSnapshotIsIsolatedFromLaterMutation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	added, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "Stretch", Type: "duration", Target: 15, Tags: []string{"health"}})
	_, _ = f.tasks.RecordFocusSession(ctx, dto.RecordFocusInput{TaskID: added.Task.ID, DurationMS: 5 * 60_000})

	snap, err := f.tasks.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	snap[0].Tags[0] = "mutated"
	snap[0].Sessions[0].DurationMS = 1

	reset, err := f.tasks.ResetAll(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset[0].Current != 0 || len(reset[0].Sessions) != 0 || reset[0].ID != added.Task.ID {
		t.Fatalf("unexpected reset task: %+v", reset[0])
	}
	got, _ := f.tasks.GetTask(ctx, added.Task.ID)
	if got.Tags[0] != "health" {
		t.Fatalf("snapshot mutation leaked into store: %v", got.Tags)
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	a, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "A", Target: 1})
	b, _ := f.tasks.AddTask(ctx, dto.AddTaskInput{Title: "B", Target: 1})
	if err := f.tasks.DeleteTask(ctx, dto.DeleteTaskInput{ID: a.Task.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := f.tasks.ListTasks(ctx)
	if len(list) != 1 || list[0].ID != b.Task.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
	if err := f.tasks.DeleteTask(ctx, dto.DeleteTaskInput{ID: a.Task.ID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStorageFailureIsReturned(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.store.FailWrites = errors.New("disk full")
	if _, err := f.tasks.AddTask(context.Background(), dto.AddTaskInput{Title: "A", Target: 1}); err == nil {
		t.Fatalf("expected write failure")
	}
}
