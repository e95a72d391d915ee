package domain

import "time"

// ActiveFocus is the focus interval currently running, if any.
type ActiveFocus struct {
	TaskID    string    `json:"task_id"`
	TaskTitle string    `json:"task_title"`
	StartedAt time.Time `json:"started_at"`
}

// ElapsedMS is the non-negative length of the interval ending at now.
func (a ActiveFocus) ElapsedMS(now time.Time) int64 {
	ms := now.Sub(a.StartedAt).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}
