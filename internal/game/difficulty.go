package game

// DifficultyContext is derived from the tile the player stands on when an
// encounter fires. It is fixed for the lifetime of one encounter.
type DifficultyContext struct {
	Level            int
	TensionAtTrigger int
	MobHP            float64 // base hp before rarity and role multipliers
	MobAtk           float64 // base damage before rarity and role multipliers
}

// DeriveDifficulty applies the tile formulas:
//
//	hp  = 30 + level*10 + tension*5
//	atk = 5 + level*2 + floor(tension/2)
func DeriveDifficulty(level, tension int) DifficultyContext {
	if level <= 0 {
		level = 1
	}
	if tension < 0 {
		tension = 0
	}
	if tension > TensionMax {
		tension = TensionMax
	}
	return DifficultyContext{
		Level:            level,
		TensionAtTrigger: tension,
		MobHP:            float64(30 + level*10 + tension*5),
		MobAtk:           float64(5 + level*2 + tension/2),
	}
}

// Sanitize fills missing values with the documented fallbacks.
func (c DifficultyContext) Sanitize() DifficultyContext {
	if c.Level <= 0 {
		c.Level = 1
	}
	if c.TensionAtTrigger < 0 {
		c.TensionAtTrigger = 0
	}
	if !(c.MobHP > 0) {
		c.MobHP = 30
	}
	if !(c.MobAtk > 0) {
		c.MobAtk = 5
	}
	return c
}
