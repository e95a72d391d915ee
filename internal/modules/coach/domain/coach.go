package domain

import (
	"errors"
	"fmt"
	"strings"

	historydomain "questlog/internal/modules/history/domain"
	profiledomain "questlog/internal/modules/profile/domain"
	progressdomain "questlog/internal/modules/progress/domain"
	settingsdomain "questlog/internal/modules/settings/domain"
	taskdomain "questlog/internal/modules/task/domain"
)

var (
	ErrNarratorUnavailable = errors.New("narrator unavailable")
	ErrNarratorTimeout     = errors.New("narrator timeout")
)

// RecentDays bounds how much history is described to the narrator.
const RecentDays = 7

type Request struct {
	Persona settingsdomain.Persona
	Context string
	Summary string
}

type Narration struct {
	Text     string
	Degraded bool
	Source   string
}

// Snapshot is the read-only state a narration is built from.
type Snapshot struct {
	Profile profiledomain.Profile
	Metrics progressdomain.Metrics
	Tasks   []taskdomain.Task
	History []historydomain.DayLog
}

func BuildContext(s Snapshot) string {
	b := strings.Builder{}
	if s.Profile.Name != "" {
		fmt.Fprintf(&b, "User: %s\n", s.Profile.Name)
	}
	if s.Profile.Motto != "" {
		fmt.Fprintf(&b, "Motto: %s\n", s.Profile.Motto)
	}
	fmt.Fprintf(&b, "Level %d (%d%%), %d XP\n", s.Metrics.Level, s.Metrics.LevelProgress, s.Metrics.XP)
	fmt.Fprintf(&b, "Today: %d%% complete, %d of %d goals done, streak %d\n",
		s.Metrics.CompletionRate, s.Metrics.CompletedTasks, s.Metrics.TotalTasks, s.Metrics.Streak)

	if len(s.Tasks) > 0 {
		b.WriteString("Goals:\n")
		for _, task := range s.Tasks {
			unit := ""
			if task.Unit != "" {
				unit = " " + task.Unit
			}
			fmt.Fprintf(&b, "- %s: %d/%d%s\n", task.Title, task.Current, task.Target, unit)
		}
	}

	start := max(len(s.History)-RecentDays, 0)
	if recent := s.History[start:]; len(recent) > 0 {
		b.WriteString("Recent days:\n")
		for _, day := range recent {
			fmt.Fprintf(&b, "- %s: %d%%\n", day.Date, day.Stats.CompletionRate)
		}
	}
	return b.String()
}
