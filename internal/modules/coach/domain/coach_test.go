package domain

import (
	"fmt"
	"strings"
	"testing"

	historydomain "questlog/internal/modules/history/domain"
	profiledomain "questlog/internal/modules/profile/domain"
	progressdomain "questlog/internal/modules/progress/domain"
	taskdomain "questlog/internal/modules/task/domain"
)

func TestBuildContextDescribesStateAndTrimsHistory(t *testing.T) {
	t.Parallel()
	history := make([]historydomain.DayLog, 0, 10)
	for day := 1; day <= 10; day++ {
		history = append(history, historydomain.DayLog{Date: fmt.Sprintf("2026-03-%02d", day), Stats: historydomain.Stats{CompletionRate: day * 10}})
	}
	got := BuildContext(Snapshot{
		Profile: profiledomain.Profile{Name: "Ada", Motto: "Ship it"},
		Metrics: progressdomain.Metrics{CompletionRate: 50, Streak: 3, Level: 2, LevelProgress: 10, XP: 120, CompletedTasks: 1, TotalTasks: 2},
		Tasks:   []taskdomain.Task{{Title: "Read", Current: 5, Target: 10, Unit: "pages"}},
		History: history,
	})
	for _, want := range []string{"User: Ada", "Motto: Ship it", "Level 2 (10%), 120 XP", "streak 3", "- Read: 5/10 pages", "- 2026-03-10: 100%"} {
		if !strings.Contains(got, want) {
			t.Fatalf("context missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2026-03-03") {
		t.Fatalf("context should only include the last %d days:\n%s", RecentDays, got)
	}
}
