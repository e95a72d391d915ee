package dto

import "time"

type AddTaskInput struct {
	Title    string
	Category string
	Type     string
	Target   int
	Unit     string
	Tags     []string
}

// UpdateTaskInput replaces the fields that are set; nil fields are kept.
type UpdateTaskInput struct {
	ID       string
	Title    *string
	Category *string
	Target   *int
	Unit     *string
	Current  *int
	Tags     []string
}

type SetProgressInput struct {
	ID      string
	Current int
}

type IncrementProgressInput struct {
	ID    string
	Delta int
}

type RecordFocusInput struct {
	TaskID     string
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMS int64
}

type DeleteTaskInput struct {
	ID string
}

type TaskOutput struct {
	ID           string
	Title        string
	Category     string
	Type         string
	Target       int
	Unit         string
	Current      int
	Percent      int
	Complete     bool
	SessionCount int
	FocusMinutes int
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MutationOutput struct {
	Task          TaskOutput
	XPAwarded     int
	ReachedTarget bool
}

type FocusOutput struct {
	Task          TaskOutput
	Minutes       int
	XPAwarded     int
	ReachedTarget bool
}
