package domain

// State is the outcome of comparing the stored last-active day with today.
type State string

const (
	StateFirstRun State = "first_run"
	StateSameDay  State = "same_day"
	StateNewDay   State = "new_day"
)

func Decide(lastActive string, found bool, today string) State {
	switch {
	case !found || lastActive == "":
		return StateFirstRun
	case lastActive == today:
		return StateSameDay
	default:
		return StateNewDay
	}
}

const (
	BonusStrongDay = 100
	BonusGoodDay   = 50
)

// DayEndBonus is the XP granted when a day is closed by hand.
func DayEndBonus(completionRate int) int {
	switch {
	case completionRate >= 80:
		return BonusStrongDay
	case completionRate >= 50:
		return BonusGoodDay
	default:
		return 0
	}
}
