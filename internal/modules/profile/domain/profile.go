package domain

import "time"

type Profile struct {
	Onboarded bool      `json:"onboarded"`
	Name      string    `json:"name"`
	Motto     string    `json:"motto"`
	XP        int       `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Award adds amount to XP, saturating at MaxXP. XP never decreases, so
// non-positive amounts are ignored.
func (p Profile) Award(amount int) Profile {
	if amount <= 0 || p.XP >= MaxXP {
		return p
	}
	if amount > MaxXP-p.XP {
		p.XP = MaxXP
		return p
	}
	p.XP += amount
	return p
}
