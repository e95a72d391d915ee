package dto

type MetricsOutput struct {
	CompletionRate int
	Streak         int
	Summary        string
	Level          int
	LevelProgress  int
	XP             int
	FocusMinutes   int
	CompletedTasks int
	TotalTasks     int
	Threshold      int
}
