package dto

type AwardXPInput struct {
	Amount int
	Reason string
}

type OnboardInput struct {
	Name  string
	Motto string
}

type ProfileOutput struct {
	Onboarded     bool
	Name          string
	Motto         string
	XP            int
	Level         int
	LevelProgress int
	XPIntoLevel   int
	XPForLevel    int
}
