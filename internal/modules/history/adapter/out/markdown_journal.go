package out

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"questlog/internal/modules/history/domain"
	historyout "questlog/internal/modules/history/port/out"
	taskdomain "questlog/internal/modules/task/domain"
	"questlog/internal/platform/clock"
	apperrors "questlog/internal/platform/errors"
	"questlog/internal/platform/markdown"
)

const journalSchemaVersion = 1

var journalBlock = markdown.Block{
	Start: "<!-- questlog:day:start -->",
	End:   "<!-- questlog:day:end -->",
}

// MarkdownJournal writes <dir>/<yyyy>/<yyyy-mm-dd>.md. Reflections written
// outside the generated block survive re-export.
type MarkdownJournal struct{}

func NewMarkdownJournal() historyout.Journal {
	return MarkdownJournal{}
}

func (MarkdownJournal) WriteDay(_ context.Context, dir string, log domain.DayLog) (string, error) {
	if !clock.ValidDayKey(log.Date) {
		return "", fmt.Errorf("%w: invalid day key %q", apperrors.ErrInvalidInput, log.Date)
	}
	folder := filepath.Join(dir, log.Date[:4])
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(folder, log.Date+".md")

	note := markdown.Note{Meta: map[string]any{}, Body: fmt.Sprintf("# %s\n\n## Reflections\n\n", log.Date)}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		note, err = markdown.Parse(string(existing))
		if err != nil {
			return "", fmt.Errorf("parse journal note %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read journal note: %w", err)
	}

	note = note.Merge(map[string]any{
		"schema_version":  journalSchemaVersion,
		"date":            log.Date,
		"completion_rate": log.Stats.CompletionRate,
		"focus_minutes":   taskdomain.MinutesOf(log.Stats.TotalFocusTimeMS),
		"tasks_completed": log.CompletedTasks(),
		"tasks_total":     len(log.Tasks),
	})
	note.Body = journalBlock.Replace(note.Body, renderDay(log))
	rendered, err := note.Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

func renderDay(log domain.DayLog) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Completion: %d%%  \nFocus: %d min\n\n", log.Stats.CompletionRate, taskdomain.MinutesOf(log.Stats.TotalFocusTimeMS))
	if len(log.Tasks) == 0 {
		b.WriteString("_No tasks._\n")
		return b.String()
	}
	for _, task := range log.Tasks {
		mark := " "
		if task.IsComplete() {
			mark = "x"
		}
		unit := ""
		if task.Unit != "" {
			unit = " " + task.Unit
		}
		fmt.Fprintf(&b, "- [%s] %s: %d/%d%s (%d%%)\n", mark, task.Title, task.Current, task.Target, unit, int(math.Round(task.Ratio()*100)))
	}
	return b.String()
}
