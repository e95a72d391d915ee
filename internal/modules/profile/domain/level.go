package domain

import "math"

// XP needed to advance out of level L is BandSize*L, so level L begins at
// BandSize*L*(L-1)/2 cumulative XP: 0, 100, 300, 600, 1000, ...
const BandSize = 100

// MaxXP caps stored and awarded XP. Level arithmetic stays exact below it.
const MaxXP = math.MaxInt >> 10

type Level struct {
	Level    int
	Progress int
	// XPIntoLevel and XPForLevel describe the current band.
	XPIntoLevel int
	XPForLevel  int
}

func LevelStart(level int) int {
	if level <= 1 {
		return 0
	}
	return BandSize * level * (level - 1) / 2
}

func LevelOf(xp int) Level {
	xp = min(max(xp, 0), MaxXP)
	// Solve BandSize*L*(L-1)/2 <= xp for L, then correct float rounding.
	level := max(int((1+math.Sqrt(1+8*float64(xp)/BandSize))/2), 1)
	for level > 1 && LevelStart(level) > xp {
		level--
	}
	for LevelStart(level+1) <= xp {
		level++
	}
	band := BandSize * level
	into := xp - LevelStart(level)
	return Level{
		Level:       level,
		Progress:    into * 100 / band,
		XPIntoLevel: into,
		XPForLevel:  band,
	}
}
