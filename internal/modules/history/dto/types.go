package dto

type ListInput struct {
	// Limit keeps only the most recent entries; zero means all.
	Limit int
}

type DayOutput struct {
	Date           string
	CompletionRate int
	TotalFocusMin  int
	TaskCount      int
	CompletedTasks int
}

type TaskLine struct {
	Title    string
	Category string
	Type     string
	Current  int
	Target   int
	Unit     string
	Percent  int
	Sessions int
}

type DayDetailOutput struct {
	Day   DayOutput
	Tasks []TaskLine
}

type ExportInput struct {
	Dir string
}

type ExportOutput struct {
	Dir   string
	Paths []string
}
