package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type TaskType string

const (
	TaskTypeCount    TaskType = "count"
	TaskTypeDuration TaskType = "duration"
)

func (t TaskType) Validate() error {
	switch t {
	case TaskTypeCount, TaskTypeDuration:
		return nil
	default:
		return fmt.Errorf("unsupported task type %q", string(t))
	}
}

// Session is one completed focus interval. Sessions are only ever appended.
type Session struct {
	StartedAt  time.Time `json:"start_ts"`
	EndedAt    time.Time `json:"end_ts"`
	DurationMS int64     `json:"duration_ms"`
}

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Type      TaskType  `json:"type"`
	Target    int       `json:"target"`
	Unit      string    `json:"unit"`
	Current   int       `json:"current"`
	Sessions  []Session `json:"sessions"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", t.Target)
	}
	if t.Current < 0 {
		return fmt.Errorf("current must be non-negative, got %d", t.Current)
	}
	return nil
}

// Ratio is the clamped completion in [0,1]. A task without a usable target
// counts as complete.
func (t Task) Ratio() float64 {
	if t.Target <= 0 {
		return 1
	}
	if t.Current <= 0 {
		return 0
	}
	return math.Min(float64(t.Current)/float64(t.Target), 1)
}

func (t Task) IsComplete() bool {
	return t.Ratio() >= 1
}

func (t Task) FocusTimeMS() int64 {
	var total int64
	for _, s := range t.Sessions {
		total += s.DurationMS
	}
	return total
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	out := t
	if t.Sessions != nil {
		out.Sessions = append([]Session(nil), t.Sessions...)
	}
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	return out
}

func CloneAll(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Reset clears the day's progress. Identity and definition are kept.
func (t Task) Reset(now time.Time) Task {
	out := t.Clone()
	out.Current = 0
	out.Sessions = []Session{}
	out.UpdatedAt = now
	return out
}

// CrossedTarget reports whether moving from old to updated takes the task
// from below its target to at or above it through added progress. Editing
// the target alone never counts.
func CrossedTarget(old, updated Task) bool {
	return updated.Current > old.Current && !old.IsComplete() && updated.IsComplete()
}

func HasProgress(tasks []Task) bool {
	for _, t := range tasks {
		if t.Current > 0 {
			return true
		}
	}
	return false
}

// MinutesOf rounds a duration to whole minutes, half away from zero.
func MinutesOf(durationMS int64) int {
	if durationMS <= 0 {
		return 0
	}
	return int(math.Round(float64(durationMS) / float64(time.Minute/time.Millisecond)))
}
