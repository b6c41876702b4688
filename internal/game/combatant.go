package game

// EntryKind distinguishes the two kinds of queue entries.
type EntryKind int

const (
	EntryEnemy EntryKind = iota
	EntryBonus
)

func (k EntryKind) String() string {
	if k == EntryBonus {
		return "bonus"
	}
	return "enemy"
}

// Vitals are the fields every combatant carries.
type Vitals struct {
	HP       float64
	MaxHP    float64
	Shield   float64
	X        float64
	HitFlash int
}

// Alive reports whether hp is still above zero.
func (v Vitals) Alive() bool { return v.HP > 0 }

// DisplayHP is hp clamped at zero. The raw value may go negative for one
// tick before the death check runs.
func (v Vitals) DisplayHP() float64 {
	if v.HP < 0 {
		return 0
	}
	return v.HP
}

// absorb applies dmg to shield first and the remainder to hp. It returns
// the part the shield soaked up.
func (v *Vitals) absorb(dmg float64) float64 {
	if dmg < 0 {
		dmg = 0
	}
	absorbed := dmg
	if absorbed > v.Shield {
		absorbed = v.Shield
	}
	v.Shield -= absorbed
	v.HP -= dmg - absorbed
	return absorbed
}

// heal raises hp by amount without passing MaxHP.
func (v *Vitals) heal(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if v.HP >= v.MaxHP {
		return 0
	}
	before := v.HP
	v.HP = Clamp(v.HP+amount, v.HP, v.MaxHP)
	return v.HP - before
}

// Combatant is one queue entry: an enemy or a bonus slot.
type Combatant struct {
	Vitals
	ID    string
	Kind  EntryKind
	Label string
	Color string
	Size  float64

	Rarity    RarityTier
	Class     MobClass
	Role      Role
	Damage    float64
	Meter     float64
	TurnCount int
	DropsKey  bool
}

// IsEnemy reports whether c takes part in combat.
func (c *Combatant) IsEnemy() bool { return c.Kind == EntryEnemy }

// PlayerCombatant is the encounter-local copy of the player. Temp bonuses
// live only as long as the encounter.
type PlayerCombatant struct {
	Vitals
	Attack     float64
	Defense    float64
	Speed      float64
	CritChance float64

	TempAttackBonus float64
	TempCritBonus   float64
	TempSpeedBonus  float64

	Meter float64
}

// NewPlayerCombatant copies the persistent attributes into a combatant
// standing at the player anchor.
func NewPlayerCombatant(a Attributes) PlayerCombatant {
	return PlayerCombatant{
		Vitals: Vitals{
			HP:    float64(a.HP),
			MaxHP: float64(a.MaxHP),
			X:     PlayerX,
		},
		Attack:     float64(a.Attack),
		Defense:    float64(a.Defense),
		Speed:      float64(a.Speed),
		CritChance: float64(a.CritChance),
	}
}

// EffectiveAttack includes the encounter bonus.
func (p PlayerCombatant) EffectiveAttack() float64 { return p.Attack + p.TempAttackBonus }

// EffectiveCrit includes the encounter bonus, in percent.
func (p PlayerCombatant) EffectiveCrit() float64 { return p.CritChance + p.TempCritBonus }

// EffectiveSpeed is the meter fill per tick.
func (p PlayerCombatant) EffectiveSpeed() float64 { return p.Speed + p.TempSpeedBonus }
