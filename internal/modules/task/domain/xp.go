package domain

const (
	XPTaskCreated    = 10
	XPTargetReached  = 50
	XPPerFocusMinute = 2
)
