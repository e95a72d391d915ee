package domain

import (
	"fmt"
	"math"

	historydomain "questlog/internal/modules/history/domain"
	profiledomain "questlog/internal/modules/profile/domain"
	taskdomain "questlog/internal/modules/task/domain"
)

// DefaultStreakThreshold is the completion rate a day needs to extend a
// streak.
const DefaultStreakThreshold = 50

type Metrics struct {
	CompletionRate int
	Streak         int
	Summary        string
	Level          int
	LevelProgress  int
	XP             int
	TotalFocusMS   int64
	CompletedTasks int
	TotalTasks     int
}

// Evaluate derives the day's metrics. It never mutates its inputs and never
// fails; profile may be nil.
func Evaluate(tasks []taskdomain.Task, history []historydomain.DayLog, profile *profiledomain.Profile, threshold int) Metrics {
	rate := CompletionRate(tasks)
	streak := Streak(history, threshold)
	m := Metrics{
		CompletionRate: rate,
		Streak:         streak,
		Summary:        Summary(len(tasks), rate, streak),
		TotalTasks:     len(tasks),
	}
	for _, task := range tasks {
		m.TotalFocusMS += task.FocusTimeMS()
		if task.IsComplete() {
			m.CompletedTasks++
		}
	}
	xp := 0
	if profile != nil {
		xp = profile.XP
	}
	level := profiledomain.LevelOf(xp)
	m.XP = max(xp, 0)
	m.Level = level.Level
	m.LevelProgress = level.Progress
	return m
}

// CompletionRate is the rounded mean of clamped task ratios, 0 for no tasks.
func CompletionRate(tasks []taskdomain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0.0
	for _, task := range tasks {
		sum += task.Ratio() * 100
	}
	return int(math.Round(sum / float64(len(tasks))))
}

// Streak counts the most recent consecutive days at or above threshold.
func Streak(history []historydomain.DayLog, threshold int) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Stats.CompletionRate < threshold {
			break
		}
		streak++
	}
	return streak
}

func Summary(taskCount, rate, streak int) string {
	var day string
	switch {
	case taskCount == 0:
		day = "No goals set for today yet."
	case rate >= 100:
		day = "Every goal is done today."
	case rate >= 80:
		day = fmt.Sprintf("Strong day so far: %d%% complete.", rate)
	case rate >= 50:
		day = fmt.Sprintf("Solid progress: %d%% complete.", rate)
	case rate > 0:
		day = fmt.Sprintf("Under way: %d%% complete.", rate)
	default:
		day = "Nothing logged yet today."
	}
	switch streak {
	case 0:
		return day + " No active streak."
	case 1:
		return day + " Streak: 1 day."
	default:
		return fmt.Sprintf("%s Streak: %d days.", day, streak)
	}
}
