package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"questlog/internal/platform/logging"
)

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)
	logger.Debug("hidden")
	logger.Info("day archived", "date", "2026-02-25")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, "day archived") || !strings.Contains(out, "date=2026-02-25") {
		t.Fatalf("expected structured info line, got %s", out)
	}
}

func TestNewDefaultsToWarnForUnknownLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New("chatty", buf)
	logger.Info("quiet")
	logger.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Fatalf("unexpected output %s", buf.String())
	}
}

func TestOrNullHandlesNil(t *testing.T) {
	t.Parallel()
	logging.OrNull(nil).Warn("dropped")
}
