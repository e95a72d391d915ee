package clock

import (
	"fmt"
	"time"
)

const DayKeyLayout = "2006-01-02"

// Calendar turns instants into calendar-day keys. Every day comparison in the
// app goes through one Calendar so stored and current keys share a zone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(zone string) (Calendar, error) {
	if zone == "" || zone == "Local" {
		return Calendar{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Calendar{}, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return Calendar{loc: loc}, nil
}

func UTCCalendar() Calendar {
	return Calendar{loc: time.UTC}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.Location()).Format(DayKeyLayout)
}

func ValidDayKey(key string) bool {
	_, err := time.Parse(DayKeyLayout, key)
	return err == nil
}
