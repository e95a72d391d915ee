package dto

import "time"

type StartInput struct {
	TaskID string
}

type StartOutput struct {
	TaskID    string
	TaskTitle string
	StartedAt time.Time
}

type StopOutput struct {
	TaskID        string
	TaskTitle     string
	StartedAt     time.Time
	EndedAt       time.Time
	DurationMS    int64
	Minutes       int
	Current       int
	Target        int
	XPAwarded     int
	ReachedTarget bool
}

type ActiveOutput struct {
	TaskID    string
	TaskTitle string
	StartedAt time.Time
	ElapsedMS int64
}
