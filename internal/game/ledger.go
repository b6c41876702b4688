package game

import "math/rand"

// Reward is what one defeated enemy is worth.
type Reward struct {
	XP       int
	Gold     int
	Gems     int
	DropsKey bool
}

// RewardLedger accumulates rewards of the current encounter. Every entry is
// flushed to the collaborators as soon as it is recorded; the ledger itself
// is only the running total reported in the result.
type RewardLedger struct {
	XP   int
	Gold int
	Gems int
	Keys int
}

// Add records r.
func (l *RewardLedger) Add(r Reward) {
	l.XP += r.XP
	l.Gold += r.Gold
	l.Gems += r.Gems
	if r.DropsKey {
		l.Keys++
	}
}

// rollReward prices an enemy defeated on a tile of the given level.
func rollReward(level int, c *Combatant, p CombatParams, rng *rand.Rand) Reward {
	if level <= 0 {
		level = 1
	}
	r := Reward{
		XP:       level * 10,
		Gold:     level * 5,
		DropsKey: c.DropsKey,
	}
	if rng.Float64() < p.GemDropChance {
		r.Gems = 1
	}
	return r
}
