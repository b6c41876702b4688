package game

// Progression is the owner of the persistent player attributes. The battle
// reads combat stats from it once and writes back at checkpoints.
type Progression interface {
	Stats() Attributes
	GrantXP(xp int) LevelUp
	SetHP(hp int)
	RestoreHP()
}

// Economy receives currency credits.
type Economy interface {
	Credit(gold, gems int)
}

// Inventory holds the player's consumables.
type Inventory interface {
	Consumables() []Consumable
	RemoveConsumable(id string) bool
	AddConsumable(c Consumable)
	AddKey()
}

// SideEffects plays cues. Failures on the other side are not the caller's
// concern.
type SideEffects interface {
	Play(cue Cue)
}

// SideEffectsFunc adapts a function to SideEffects.
type SideEffectsFunc func(Cue)

func (f SideEffectsFunc) Play(cue Cue) {
	if f != nil {
		f(cue)
	}
}

type nopSideEffects struct{}

func (nopSideEffects) Play(Cue) {}

// ProfileStore loads and saves profiles at session boundaries.
type ProfileStore interface {
	Load(id string) (*Profile, error)
	Save(p *Profile) error
}
