package domain

import (
	"fmt"

	taskdomain "questlog/internal/modules/task/domain"
	"questlog/internal/platform/clock"
)

// Stats are the metrics frozen into a DayLog at archive time.
type Stats struct {
	CompletionRate   int   `json:"completion_rate"`
	TotalFocusTimeMS int64 `json:"total_focus_time_ms"`
}

// DayLog is the immutable record of one concluded day. Its tasks are a deep
// snapshot and share nothing with the live task list.
type DayLog struct {
	Date  string            `json:"date"`
	Tasks []taskdomain.Task `json:"tasks"`
	Stats Stats             `json:"stats"`
}

func NewDayLog(date string, tasks []taskdomain.Task, completionRate int) DayLog {
	snapshot := taskdomain.CloneAll(tasks)
	if snapshot == nil {
		snapshot = []taskdomain.Task{}
	}
	var focus int64
	for _, task := range snapshot {
		focus += task.FocusTimeMS()
	}
	return DayLog{
		Date:  date,
		Tasks: snapshot,
		Stats: Stats{CompletionRate: clampRate(completionRate), TotalFocusTimeMS: focus},
	}
}

func (d DayLog) Validate() error {
	if !clock.ValidDayKey(d.Date) {
		return fmt.Errorf("date %q is not a YYYY-MM-DD day key", d.Date)
	}
	if d.Stats.CompletionRate < 0 || d.Stats.CompletionRate > 100 {
		return fmt.Errorf("completion rate out of range: %d", d.Stats.CompletionRate)
	}
	return nil
}

func (d DayLog) Clone() DayLog {
	out := d
	out.Tasks = taskdomain.CloneAll(d.Tasks)
	return out
}

func (d DayLog) CompletedTasks() int {
	n := 0
	for _, task := range d.Tasks {
		if task.IsComplete() {
			n++
		}
	}
	return n
}

func CloneAll(logs []DayLog) []DayLog {
	out := make([]DayLog, len(logs))
	for i, log := range logs {
		out[i] = log.Clone()
	}
	return out
}

func clampRate(rate int) int {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
