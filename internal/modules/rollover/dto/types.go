package dto

type CheckOutput struct {
	State        string
	Today        string
	LastActive   string
	Archived     bool
	ArchivedDate string
	Reset        bool
	// RunningFocus names the task of a focus interval left running from an
	// earlier day. Its whole duration counts toward the day it is stopped.
	RunningFocus      string
	RunningFocusSince string
	// Notice is set once, on the run that performed the rollover.
	Notice string
}

type EndDayOutput struct {
	Date           string
	CompletionRate int
	XPBonus        int
	Streak         int
	Reward         bool
	Summary        string
	Level          int
	LevelProgress  int
}
